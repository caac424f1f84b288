package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"hospital-ipd-engine/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHistoryUsecase() (AdmissionHistoryUsecase, *fakeSnapshotRepo) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	repo := &fakeSnapshotRepo{}
	return NewAdmissionHistoryUsecase(nil, log, repo), repo
}

func TestGetPatientAdmissionHistory(t *testing.T) {
	uc, repo := newHistoryUsecase()
	repo.Upsert(nil, &entity.AdmissionSnapshot{
		RoomAdmissionID:    101,
		PatientID:          42,
		PatientType:        "Direct",
		RoomAllocationDate: "2026-03-15",
		AdmissionStatus:    "Discharged",
		Status:             "Active",
	})
	repo.Upsert(nil, &entity.AdmissionSnapshot{
		RoomAdmissionID:    102,
		PatientID:          42,
		PatientType:        "IPD",
		RoomAllocationDate: "2026-04-01",
		AdmissionStatus:    "Active",
		Status:             "Active",
	})
	repo.Upsert(nil, &entity.AdmissionSnapshot{
		RoomAdmissionID: 103,
		PatientID:       7,
		AdmissionStatus: "Active",
	})

	history, err := uc.GetPatientAdmissionHistory(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, history, 2)

	ids := []int{history[0].RoomAdmissionID, history[1].RoomAdmissionID}
	assert.ElementsMatch(t, []int{101, 102}, ids)

	for _, row := range history {
		assert.Equal(t, 42, row.PatientID)
		if row.RoomAdmissionID == 101 {
			// Stored YYYY-MM-DD, served DD-MM-YYYY.
			assert.Equal(t, "15-03-2026", row.RoomAllocationDate)
			assert.Equal(t, "Discharged", row.AdmissionStatus)
		}
	}
}

func TestGetPatientAdmissionHistoryEmpty(t *testing.T) {
	uc, _ := newHistoryUsecase()

	history, err := uc.GetPatientAdmissionHistory(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestGetPatientAdmissionHistoryRequiresPatient(t *testing.T) {
	uc, _ := newHistoryUsecase()

	_, err := uc.GetPatientAdmissionHistory(context.Background(), 0)
	assert.ErrorIs(t, err, ErrMissingPatient)
}

func TestGetPatientAdmissionHistoryPropagatesErrors(t *testing.T) {
	uc, repo := newHistoryUsecase()
	repo.findErr = errors.New("connection reset")

	_, err := uc.GetPatientAdmissionHistory(context.Background(), 42)
	assert.Error(t, err)
}
