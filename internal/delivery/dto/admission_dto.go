package dto

import "time"

// Request DTOs

type CreateAdmissionRequest struct {
	PatientID   int    `json:"patient_id" validate:"required,min=1"`
	PatientType string `json:"patient_type" validate:"required,oneof=OPD IPD Emergency Direct"`

	PatientAppointmentID    int `json:"patient_appointment_id"`
	PreviousRoomAdmissionID int `json:"previous_room_admission_id"`
	EmergencyAdmissionID    int `json:"emergency_admission_id"`

	AdmittingDoctorID  int    `json:"admitting_doctor_id" validate:"required,min=1"`
	RoomBedsID         int    `json:"room_beds_id" validate:"required,min=1"`
	RoomAllocationDate string `json:"room_allocation_date" validate:"required"`
	RoomVacantDate     string `json:"room_vacant_date"`

	AdmissionStatus string `json:"admission_status"`

	Diagnosis        string `json:"diagnosis"`
	CaseSheet        string `json:"case_sheet"`
	CaseSheetDetails string `json:"case_sheet_details"`

	IsLinkedToICU      string `json:"is_linked_to_icu" validate:"omitempty,oneof=Yes No"`
	ScheduleOT         string `json:"schedule_ot" validate:"omitempty,oneof=Yes No"`
	ShiftToAnotherRoom string `json:"shift_to_another_room" validate:"omitempty,oneof=Yes No"`
	ShiftedTo          int    `json:"shifted_to"`
	ShiftedToDetails   string `json:"shifted_to_details"`
}

type UpdateAdmissionRequest struct {
	RoomBedsID         *int    `json:"room_beds_id" validate:"omitempty,min=1"`
	RoomAllocationDate *string `json:"room_allocation_date"`
	RoomVacantDate     *string `json:"room_vacant_date"`
	Diagnosis          *string `json:"diagnosis"`
	CaseSheet          *string `json:"case_sheet"`
	CaseSheetDetails   *string `json:"case_sheet_details"`
	ShiftToAnotherRoom *string `json:"shift_to_another_room" validate:"omitempty,oneof=Yes No"`
	ShiftedTo          *int    `json:"shifted_to"`
	ShiftedToDetails   *string `json:"shifted_to_details"`
	BillID             *int    `json:"bill_id"`
	Status             *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type UpdateAdmissionStatusRequest struct {
	AdmissionStatus string `json:"admission_status" validate:"required"`
}

// Response DTOs

type AdmissionResponse struct {
	RoomAdmissionID int    `json:"room_admission_id"`
	PatientID       int    `json:"patient_id"`
	PatientType     string `json:"patient_type"`

	PatientAppointmentID    int `json:"patient_appointment_id,omitempty"`
	PreviousRoomAdmissionID int `json:"previous_room_admission_id,omitempty"`
	EmergencyAdmissionID    int `json:"emergency_admission_id,omitempty"`

	AdmittingDoctorID  int    `json:"admitting_doctor_id"`
	RoomBedsID         int    `json:"room_beds_id"`
	RoomAllocationDate string `json:"room_allocation_date"`
	RoomVacantDate     string `json:"room_vacant_date,omitempty"`
	AdmissionDate      string `json:"admission_date,omitempty"`

	AdmissionStatus string `json:"admission_status"`
	Status          string `json:"status"`

	Diagnosis        string `json:"diagnosis,omitempty"`
	CaseSheet        string `json:"case_sheet,omitempty"`
	CaseSheetDetails string `json:"case_sheet_details,omitempty"`

	IsLinkedToICU      string `json:"is_linked_to_icu"`
	ScheduleOT         string `json:"schedule_ot"`
	ShiftToAnotherRoom string `json:"shift_to_another_room"`
	ShiftedTo          int    `json:"shifted_to,omitempty"`
	ShiftedToDetails   string `json:"shifted_to_details,omitempty"`

	ICUAdmissionID int `json:"icu_admission_id,omitempty"`
	OTAdmissionID  int `json:"ot_admission_id,omitempty"`
	BillID         int `json:"bill_id,omitempty"`
}

type AppointmentResponse struct {
	PatientAppointmentID int    `json:"patient_appointment_id"`
	DoctorID             int    `json:"doctor_id,omitempty"`
	AppointmentDate      string `json:"appointment_date,omitempty"`
	AppointmentTime      string `json:"appointment_time,omitempty"`
	Status               string `json:"status,omitempty"`
}

type EmergencyAdmissionResponse struct {
	EmergencyAdmissionID int    `json:"emergency_admission_id"`
	EmergencyBedID       int    `json:"emergency_bed_id,omitempty"`
	AdmissionDate        string `json:"admission_date,omitempty"`
	Status               string `json:"status,omitempty"`
}

// ContextOptionsResponse carries the source list matching the requested
// patient type; the other two lists stay empty.
type ContextOptionsResponse struct {
	PatientID           int                          `json:"patient_id"`
	PatientType         string                       `json:"patient_type"`
	SecondaryField      string                       `json:"secondary_field,omitempty"`
	Appointments        []AppointmentResponse        `json:"appointments,omitempty"`
	RoomAdmissions      []AdmissionResponse          `json:"room_admissions,omitempty"`
	EmergencyAdmissions []EmergencyAdmissionResponse `json:"emergency_admissions,omitempty"`
}

// AdmissionSnapshotResponse is one row of the local admission read-model,
// served on the history surface without a round trip to the remote store.
type AdmissionSnapshotResponse struct {
	RoomAdmissionID    int    `json:"room_admission_id"`
	PatientID          int    `json:"patient_id"`
	PatientType        string `json:"patient_type"`
	AdmittingDoctorID  int    `json:"admitting_doctor_id"`
	RoomBedsID         int    `json:"room_beds_id"`
	RoomAllocationDate string `json:"room_allocation_date"`
	RoomVacantDate     string `json:"room_vacant_date,omitempty"`
	AdmissionStatus    string `json:"admission_status"`
	ScheduleOT         string `json:"schedule_ot"`
	IsLinkedToICU      string `json:"is_linked_to_icu"`
	ICUAdmissionID     int    `json:"icu_admission_id,omitempty"`
	Status             string `json:"status"`
}

type CapacityOverviewResponse struct {
	Rooms map[string]RoomCapacityResponse `json:"rooms"`
}

type RoomCapacityResponse struct {
	Total     int `json:"total"`
	Occupied  int `json:"occupied"`
	Available int `json:"available"`
}

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	ActorID   *int                   `json:"actor_id,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
