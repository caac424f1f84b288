package usecase

import (
	"context"

	"hospital-ipd-engine/internal/converter"
	"hospital-ipd-engine/internal/delivery/dto"
	"hospital-ipd-engine/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AdmissionHistoryUsecase serves a patient's admission history from the
// local snapshot read-model, without a round trip to the remote store.
type AdmissionHistoryUsecase interface {
	GetPatientAdmissionHistory(ctx context.Context, patientID int) ([]dto.AdmissionSnapshotResponse, error)
}

type admissionHistoryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	snapshotRepo repository.AdmissionSnapshotRepository
}

func NewAdmissionHistoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	snapshotRepo repository.AdmissionSnapshotRepository,
) AdmissionHistoryUsecase {
	return &admissionHistoryUsecase{
		db:           db,
		log:          log,
		snapshotRepo: snapshotRepo,
	}
}

func (u *admissionHistoryUsecase) GetPatientAdmissionHistory(ctx context.Context, patientID int) ([]dto.AdmissionSnapshotResponse, error) {
	if patientID <= 0 {
		return nil, ErrMissingPatient
	}

	snapshots, err := u.snapshotRepo.FindByPatientID(u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find admission history for patient %d: %+v", patientID, err)
		return nil, err
	}

	return converter.SnapshotsToResponses(snapshots), nil
}
