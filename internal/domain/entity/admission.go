package entity

import (
	"time"

	"hospital-ipd-engine/pkg/istdate"
)

// AdmissionStatus is the lifecycle state of an admission episode
type AdmissionStatus string

const (
	AdmissionStatusActive           AdmissionStatus = "Active"
	AdmissionStatusMovedToICU       AdmissionStatus = "Moved To ICU"
	AdmissionStatusSurgeryScheduled AdmissionStatus = "Surgery Scheduled"
	AdmissionStatusDischarged       AdmissionStatus = "Discharged"
)

// AdmissionStatuses lists every accepted lifecycle state. Any of the four is
// valid for a freshly created admission; the store does not enforce
// monotonic transitions.
var AdmissionStatuses = []AdmissionStatus{
	AdmissionStatusActive,
	AdmissionStatusMovedToICU,
	AdmissionStatusSurgeryScheduled,
	AdmissionStatusDischarged,
}

func (s AdmissionStatus) IsValid() bool {
	for _, v := range AdmissionStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsForwardTransition reports whether moving from s to next follows the
// order the admission screens offer. Backward moves are still accepted by
// the store; callers use this to flag them.
func (s AdmissionStatus) IsForwardTransition(next AdmissionStatus) bool {
	if s == next {
		return true
	}
	return s == AdmissionStatusActive
}

// RecordStatus is the soft-delete visibility flag, orthogonal to the
// lifecycle state.
type RecordStatus string

const (
	RecordStatusActive   RecordStatus = "Active"
	RecordStatusInactive RecordStatus = "Inactive"
)

// YesNo is a boolean-in-meaning flag stored as a string on the wire.
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

func (y YesNo) Bool() bool {
	return y == Yes
}

// Admission represents one continuous occupancy of a bed by a patient.
// Identifiers are assigned by the remote hospital store; zero means unset.
type Admission struct {
	RoomAdmissionID int
	PatientID       int
	PatientType     PatientType

	// Secondary context, exactly one populated according to PatientType.
	PatientAppointmentID    int
	PreviousRoomAdmissionID int
	EmergencyAdmissionID    int

	AdmittingDoctorID int
	RoomBedsID        int

	RoomAllocationDate istdate.Date
	RoomVacantDate     istdate.Date
	AdmissionDate      time.Time

	AdmissionStatus AdmissionStatus
	Status          RecordStatus

	Diagnosis        string
	CaseSheet        string
	CaseSheetDetails string

	IsLinkedToICU      YesNo
	ScheduleOT         YesNo
	ShiftToAnotherRoom YesNo
	ShiftedTo          int
	ShiftedToDetails   string

	// Forward references populated by side-effect operations.
	ICUAdmissionID int
	OTAdmissionID  int
	BillID         int
}

func (a *Admission) IsActive() bool {
	return a.AdmissionStatus == AdmissionStatusActive
}

// SecondaryContextID returns the upstream reference matching the patient
// type, or zero for Direct admissions.
func (a *Admission) SecondaryContextID() int {
	switch a.PatientType {
	case PatientTypeOPD:
		return a.PatientAppointmentID
	case PatientTypeIPD:
		return a.PreviousRoomAdmissionID
	case PatientTypeEmergency:
		return a.EmergencyAdmissionID
	default:
		return 0
	}
}

// AdmissionUpdate is a partial update against an existing admission. Nil
// fields are left untouched by the store.
type AdmissionUpdate struct {
	AdmissionStatus    *AdmissionStatus
	Status             *RecordStatus
	RoomBedsID         *int
	RoomAllocationDate *istdate.Date
	RoomVacantDate     *istdate.Date
	Diagnosis          *string
	CaseSheet          *string
	CaseSheetDetails   *string
	ScheduleOT         *YesNo
	ShiftToAnotherRoom *YesNo
	ShiftedTo          *int
	ShiftedToDetails   *string
	ICUAdmissionID     *int
	OTAdmissionID      *int
	BillID             *int
}

// IsEmpty reports whether the patch carries no change at all.
func (u *AdmissionUpdate) IsEmpty() bool {
	return u.AdmissionStatus == nil && u.Status == nil && u.RoomBedsID == nil &&
		u.RoomAllocationDate == nil && u.RoomVacantDate == nil &&
		u.Diagnosis == nil && u.CaseSheet == nil && u.CaseSheetDetails == nil &&
		u.ScheduleOT == nil && u.ShiftToAnotherRoom == nil &&
		u.ShiftedTo == nil && u.ShiftedToDetails == nil &&
		u.ICUAdmissionID == nil && u.OTAdmissionID == nil && u.BillID == nil
}
