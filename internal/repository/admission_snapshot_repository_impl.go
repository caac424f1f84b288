package repository

import (
	"errors"

	"hospital-ipd-engine/internal/domain/entity"
	domainRepo "hospital-ipd-engine/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type admissionSnapshotRepository struct{}

func NewAdmissionSnapshotRepository() domainRepo.AdmissionSnapshotRepository {
	return &admissionSnapshotRepository{}
}

// Upsert inserts the snapshot or, when a row for the same room admission
// already exists, overwrites its mutable fields. Insert-vs-update races on
// the unique index resolve to an update.
func (r *admissionSnapshotRepository) Upsert(db *gorm.DB, snapshot *entity.AdmissionSnapshot) error {
	err := db.Create(snapshot).Error
	if err == nil {
		return nil
	}
	if !isUniqueViolation(err) {
		return err
	}
	return db.Model(&entity.AdmissionSnapshot{}).
		Where("room_admission_id = ?", snapshot.RoomAdmissionID).
		Updates(map[string]interface{}{
			"patient_id":           snapshot.PatientID,
			"patient_type":         snapshot.PatientType,
			"admitting_doctor_id":  snapshot.AdmittingDoctorID,
			"room_beds_id":         snapshot.RoomBedsID,
			"room_allocation_date": snapshot.RoomAllocationDate,
			"room_vacant_date":     snapshot.RoomVacantDate,
			"admission_status":     snapshot.AdmissionStatus,
			"schedule_ot":          snapshot.ScheduleOT,
			"is_linked_to_icu":     snapshot.IsLinkedToICU,
			"icu_admission_id":     snapshot.ICUAdmissionID,
			"status":               snapshot.Status,
		}).Error
}

func (r *admissionSnapshotRepository) FindByRoomAdmissionID(db *gorm.DB, roomAdmissionID int) (*entity.AdmissionSnapshot, error) {
	var snapshot entity.AdmissionSnapshot
	err := db.Where("room_admission_id = ?", roomAdmissionID).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

func (r *admissionSnapshotRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.AdmissionSnapshot, error) {
	var snapshots []entity.AdmissionSnapshot
	err := db.Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

// isUniqueViolation checks for PostgreSQL error code 23505 (unique_violation)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
