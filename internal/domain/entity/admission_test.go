package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdmissionStatusIsValid(t *testing.T) {
	for _, s := range AdmissionStatuses {
		assert.True(t, s.IsValid(), string(s))
	}

	invalid := []AdmissionStatus{
		"",
		"active",
		"ACTIVE",
		"Moved to ICU",
		"Closed",
		"Surgery",
	}
	for _, s := range invalid {
		assert.False(t, s.IsValid(), string(s))
	}
}

func TestAdmissionStatusForwardTransition(t *testing.T) {
	// From Active everything is forward, and staying put always is.
	for _, next := range AdmissionStatuses {
		assert.True(t, AdmissionStatusActive.IsForwardTransition(next), string(next))
		assert.True(t, next.IsForwardTransition(next), string(next))
	}

	assert.False(t, AdmissionStatusDischarged.IsForwardTransition(AdmissionStatusActive))
	assert.False(t, AdmissionStatusMovedToICU.IsForwardTransition(AdmissionStatusActive))
	assert.False(t, AdmissionStatusSurgeryScheduled.IsForwardTransition(AdmissionStatusMovedToICU))
}

func TestYesNoBool(t *testing.T) {
	assert.True(t, Yes.Bool())
	assert.False(t, No.Bool())
	assert.False(t, YesNo("").Bool())
	assert.False(t, YesNo("yes").Bool())
}

func TestAdmissionSecondaryContextID(t *testing.T) {
	a := Admission{
		PatientAppointmentID:    11,
		PreviousRoomAdmissionID: 22,
		EmergencyAdmissionID:    33,
	}

	a.PatientType = PatientTypeOPD
	assert.Equal(t, 11, a.SecondaryContextID())

	a.PatientType = PatientTypeIPD
	assert.Equal(t, 22, a.SecondaryContextID())

	a.PatientType = PatientTypeEmergency
	assert.Equal(t, 33, a.SecondaryContextID())

	a.PatientType = PatientTypeDirect
	assert.Equal(t, 0, a.SecondaryContextID())
}

func TestAdmissionUpdateIsEmpty(t *testing.T) {
	var u AdmissionUpdate
	assert.True(t, u.IsEmpty())

	status := AdmissionStatusDischarged
	u.AdmissionStatus = &status
	assert.False(t, u.IsEmpty())

	u = AdmissionUpdate{}
	flag := Yes
	u.ScheduleOT = &flag
	assert.False(t, u.IsEmpty())
}
