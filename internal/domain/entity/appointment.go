package entity

import "hospital-ipd-engine/pkg/istdate"

// Appointment is an open out-patient appointment, one of the upstream
// contexts an admission may reference.
type Appointment struct {
	PatientAppointmentID int
	PatientID            int
	DoctorID             int
	AppointmentDate      istdate.Date
	AppointmentTime      string
	Status               string
}

// EmergencyAdmission is an emergency slot occupied by the patient, another
// upstream context an admission may reference.
type EmergencyAdmission struct {
	EmergencyAdmissionID int
	PatientID            int
	EmergencyBedID       int
	AdmissionDate        istdate.Date
	Status               string
}
