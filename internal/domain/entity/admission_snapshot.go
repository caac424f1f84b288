package entity

import "time"

// AdmissionSnapshot is the local read-model row kept for every admission
// this engine has created or touched. It feeds the audit and dashboard
// surface without a round trip to the remote store; the store stays the
// source of truth.
type AdmissionSnapshot struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomAdmissionID    int       `gorm:"uniqueIndex;not null" json:"room_admission_id"`
	PatientID          int       `gorm:"not null;index" json:"patient_id"`
	PatientType        string    `gorm:"type:varchar(20);not null" json:"patient_type"`
	AdmittingDoctorID  int       `gorm:"index" json:"admitting_doctor_id"`
	RoomBedsID         int       `gorm:"not null;index" json:"room_beds_id"`
	RoomAllocationDate string    `gorm:"type:varchar(10);not null" json:"room_allocation_date"`
	RoomVacantDate     string    `gorm:"type:varchar(10)" json:"room_vacant_date,omitempty"`
	AdmissionStatus    string    `gorm:"type:varchar(30);not null;index" json:"admission_status"`
	ScheduleOT         string    `gorm:"type:varchar(5)" json:"schedule_ot"`
	IsLinkedToICU      string    `gorm:"type:varchar(5)" json:"is_linked_to_icu"`
	ICUAdmissionID     int       `json:"icu_admission_id,omitempty"`
	Status             string    `gorm:"type:varchar(10);not null" json:"status"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AdmissionSnapshot) TableName() string {
	return "admission_snapshots"
}

// SnapshotOf flattens a store admission into its local snapshot form.
func SnapshotOf(a *Admission) *AdmissionSnapshot {
	return &AdmissionSnapshot{
		RoomAdmissionID:    a.RoomAdmissionID,
		PatientID:          a.PatientID,
		PatientType:        string(a.PatientType),
		AdmittingDoctorID:  a.AdmittingDoctorID,
		RoomBedsID:         a.RoomBedsID,
		RoomAllocationDate: a.RoomAllocationDate.ISO(),
		RoomVacantDate:     a.RoomVacantDate.ISO(),
		AdmissionStatus:    string(a.AdmissionStatus),
		ScheduleOT:         string(a.ScheduleOT),
		IsLinkedToICU:      string(a.IsLinkedToICU),
		ICUAdmissionID:     a.ICUAdmissionID,
		Status:             string(a.Status),
	}
}
