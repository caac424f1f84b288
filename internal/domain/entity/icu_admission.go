package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ICUBed is one bed in the ICU layout as reported by the remote store.
type ICUBed struct {
	ICUBedID    int
	BedNo       string
	Status      string
	DailyTariff decimal.Decimal
}

// IsAvailable matches the layout status against the spellings the store is
// known to use for a free bed.
func (b ICUBed) IsAvailable() bool {
	return strings.EqualFold(b.Status, "available") || strings.EqualFold(b.Status, "vacant")
}

// PickICUBed selects the first bed marked available or vacant. When none is,
// it falls back to the first bed in the layout so the caller always gets a
// candidate; degraded reports that fallback was taken.
func PickICUBed(layout []ICUBed) (bed ICUBed, degraded bool, ok bool) {
	if len(layout) == 0 {
		return ICUBed{}, false, false
	}
	for _, b := range layout {
		if b.IsAvailable() {
			return b, false, true
		}
	}
	return layout[0], true, true
}

// ICUAdmission is the record forked from an admission when it is linked to
// ICU at creation time. It inherits the patient context of the originating
// admission and points back at it.
type ICUAdmission struct {
	ICUAdmissionID  int
	RoomAdmissionID int
	ICUBedID        int

	PatientID   int
	PatientType PatientType

	PatientAppointmentID    int
	PreviousRoomAdmissionID int
	EmergencyAdmissionID    int

	AttendingDoctorID int
	Diagnosis         string
	CaseSheetDetails  string
	DailyTariff       decimal.Decimal

	AdmissionDate time.Time
	Status        RecordStatus
}
