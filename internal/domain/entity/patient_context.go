package entity

// PatientType says which upstream context justifies the admission
type PatientType string

const (
	PatientTypeOPD       PatientType = "OPD"
	PatientTypeIPD       PatientType = "IPD"
	PatientTypeEmergency PatientType = "Emergency"
	PatientTypeDirect    PatientType = "Direct"
)

var PatientTypes = []PatientType{
	PatientTypeOPD,
	PatientTypeIPD,
	PatientTypeEmergency,
	PatientTypeDirect,
}

func (p PatientType) IsValid() bool {
	for _, v := range PatientTypes {
		if p == v {
			return true
		}
	}
	return false
}

// SecondaryField names the field that must accompany an admission of this
// patient type, or "" when none is required (Direct).
func (p PatientType) SecondaryField() string {
	switch p {
	case PatientTypeOPD:
		return "patient_appointment_id"
	case PatientTypeIPD:
		return "previous_room_admission_id"
	case PatientTypeEmergency:
		return "emergency_admission_id"
	default:
		return ""
	}
}

// RequiresSecondaryContext reports whether an admission of this type must
// carry an upstream reference.
func (p PatientType) RequiresSecondaryContext() bool {
	return p.SecondaryField() != ""
}

// ContextSelection tracks the patient, patient type and secondary context
// chosen for an admission form in flight. Its rules keep stale ids from one
// type or patient from leaking into another.
type ContextSelection struct {
	PatientID   int
	PatientType PatientType

	PatientAppointmentID    int
	PreviousRoomAdmissionID int
	EmergencyAdmissionID    int
}

// SetPatientType switches the patient type and clears all three secondary
// ids; the matching one stays empty until explicitly chosen again.
func (s *ContextSelection) SetPatientType(p PatientType) {
	s.PatientType = p
	s.clearSecondary()
}

// SetPatient records the chosen patient. A re-selection of the same patient
// keeps the secondary id; an actual change clears it.
func (s *ContextSelection) SetPatient(patientID int) {
	if s.PatientID == patientID {
		return
	}
	s.PatientID = patientID
	s.clearSecondary()
}

func (s *ContextSelection) clearSecondary() {
	s.PatientAppointmentID = 0
	s.PreviousRoomAdmissionID = 0
	s.EmergencyAdmissionID = 0
}

// SecondaryID returns the id matching the selected patient type.
func (s *ContextSelection) SecondaryID() int {
	switch s.PatientType {
	case PatientTypeOPD:
		return s.PatientAppointmentID
	case PatientTypeIPD:
		return s.PreviousRoomAdmissionID
	case PatientTypeEmergency:
		return s.EmergencyAdmissionID
	default:
		return 0
	}
}

// HasRequiredSecondary reports whether the selection satisfies the
// per-type requirement: OPD/IPD/Emergency need their matching id,
// Direct never does.
func (s *ContextSelection) HasRequiredSecondary() bool {
	if !s.PatientType.RequiresSecondaryContext() {
		return true
	}
	return s.SecondaryID() > 0
}
