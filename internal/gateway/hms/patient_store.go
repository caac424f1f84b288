package hms

import (
	"context"
	"fmt"

	"hospital-ipd-engine/internal/domain/entity"
)

func (c *Client) ListPatientAppointments(ctx context.Context, patientID int) ([]entity.Appointment, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/api/patients/%d/appointments", patientID), nil)
	if err != nil {
		return nil, err
	}
	list, err := unwrapList(raw)
	if err != nil {
		return nil, err
	}
	appointments := make([]entity.Appointment, 0, len(list))
	for _, m := range list {
		appointments = append(appointments, decodeAppointment(m))
	}
	return appointments, nil
}

func (c *Client) ListPatientRoomAdmissions(ctx context.Context, patientID int) ([]entity.Admission, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/api/patients/%d/room-admissions", patientID), nil)
	if err != nil {
		return nil, err
	}
	list, err := unwrapList(raw)
	if err != nil {
		return nil, err
	}
	admissions := make([]entity.Admission, 0, len(list))
	for _, m := range list {
		admissions = append(admissions, *decodeAdmission(m))
	}
	return admissions, nil
}

func (c *Client) ListPatientEmergencyAdmissions(ctx context.Context, patientID int) ([]entity.EmergencyAdmission, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/api/patients/%d/emergency-admissions", patientID), nil)
	if err != nil {
		return nil, err
	}
	list, err := unwrapList(raw)
	if err != nil {
		return nil, err
	}
	admissions := make([]entity.EmergencyAdmission, 0, len(list))
	for _, m := range list {
		admissions = append(admissions, decodeEmergencyAdmission(m))
	}
	return admissions, nil
}
