package usecase

import (
	"context"
	"errors"

	"hospital-ipd-engine/internal/converter"
	"hospital-ipd-engine/internal/delivery/dto"
	"hospital-ipd-engine/internal/domain/entity"
	"hospital-ipd-engine/internal/domain/gateway"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidPatientType = errors.New("invalid patient type")
	ErrMissingPatient     = errors.New("patient id is required")
)

// PatientContextUsecase serves the source list behind the admission form's
// secondary-context dropdown. Switching patient type fetches only the list
// matching the new type; the chosen id itself stays empty until the user
// picks one (ContextSelection owns that rule).
type PatientContextUsecase interface {
	ListContextOptions(ctx context.Context, patientID int, patientType entity.PatientType) (*dto.ContextOptionsResponse, error)
}

type patientContextUsecase struct {
	log          *logrus.Logger
	contextStore gateway.PatientContextStore
}

func NewPatientContextUsecase(log *logrus.Logger, contextStore gateway.PatientContextStore) PatientContextUsecase {
	return &patientContextUsecase{
		log:          log,
		contextStore: contextStore,
	}
}

func (u *patientContextUsecase) ListContextOptions(ctx context.Context, patientID int, patientType entity.PatientType) (*dto.ContextOptionsResponse, error) {
	if patientID <= 0 {
		return nil, ErrMissingPatient
	}
	if !patientType.IsValid() {
		return nil, ErrInvalidPatientType
	}

	resp := &dto.ContextOptionsResponse{
		PatientID:      patientID,
		PatientType:    string(patientType),
		SecondaryField: patientType.SecondaryField(),
	}

	switch patientType {
	case entity.PatientTypeOPD:
		appointments, err := u.contextStore.ListPatientAppointments(ctx, patientID)
		if err != nil {
			u.log.Warnf("Failed to list appointments for patient %d: %+v", patientID, err)
			return nil, err
		}
		resp.Appointments = converter.AppointmentsToResponses(appointments)
	case entity.PatientTypeIPD:
		admissions, err := u.contextStore.ListPatientRoomAdmissions(ctx, patientID)
		if err != nil {
			u.log.Warnf("Failed to list room admissions for patient %d: %+v", patientID, err)
			return nil, err
		}
		resp.RoomAdmissions = converter.AdmissionsToResponses(admissions)
	case entity.PatientTypeEmergency:
		admissions, err := u.contextStore.ListPatientEmergencyAdmissions(ctx, patientID)
		if err != nil {
			u.log.Warnf("Failed to list emergency admissions for patient %d: %+v", patientID, err)
			return nil, err
		}
		resp.EmergencyAdmissions = converter.EmergencyAdmissionsToResponses(admissions)
	case entity.PatientTypeDirect:
		// Direct admissions reference nothing upstream; no fetch.
	}

	return resp, nil
}
