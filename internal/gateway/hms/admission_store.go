package hms

import (
	"context"
	"fmt"
	"net/http"

	"hospital-ipd-engine/internal/domain/entity"
)

func (c *Client) CreateAdmission(ctx context.Context, admission *entity.Admission) (*entity.Admission, error) {
	raw, err := c.send(ctx, http.MethodPost, "/api/room-admissions", encodeAdmission(admission))
	if err != nil {
		return nil, err
	}
	m, err := unwrapObject(raw)
	if err != nil {
		return nil, err
	}
	created := decodeAdmission(m)
	if created.RoomAdmissionID == 0 {
		return nil, fmt.Errorf("hospital store returned an admission without an id")
	}
	return created, nil
}

func (c *Client) UpdateAdmission(ctx context.Context, roomAdmissionID int, update *entity.AdmissionUpdate) (*entity.Admission, error) {
	raw, err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/room-admissions/%d", roomAdmissionID), encodeAdmissionUpdate(update))
	if err != nil {
		return nil, err
	}
	m, err := unwrapObject(raw)
	if err != nil {
		return nil, err
	}
	updated := decodeAdmission(m)
	if updated.RoomAdmissionID == 0 {
		updated.RoomAdmissionID = roomAdmissionID
	}
	return updated, nil
}
