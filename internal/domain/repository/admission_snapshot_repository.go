package repository

import (
	"hospital-ipd-engine/internal/domain/entity"

	"gorm.io/gorm"
)

type AdmissionSnapshotRepository interface {
	Upsert(db *gorm.DB, snapshot *entity.AdmissionSnapshot) error
	FindByRoomAdmissionID(db *gorm.DB, roomAdmissionID int) (*entity.AdmissionSnapshot, error)
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.AdmissionSnapshot, error)
}
