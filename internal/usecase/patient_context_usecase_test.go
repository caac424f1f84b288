package usecase

import (
	"context"
	"io"
	"testing"

	"hospital-ipd-engine/internal/domain/entity"
	"hospital-ipd-engine/pkg/istdate"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContextStore struct {
	appointmentCalls int
	admissionCalls   int
	emergencyCalls   int
}

func (f *fakeContextStore) ListPatientAppointments(_ context.Context, patientID int) ([]entity.Appointment, error) {
	f.appointmentCalls++
	return []entity.Appointment{
		{PatientAppointmentID: 10, PatientID: patientID, DoctorID: 3, AppointmentTime: "13:05", AppointmentDate: istdate.Date{Year: 2026, Month: 3, Day: 12}},
	}, nil
}

func (f *fakeContextStore) ListPatientRoomAdmissions(_ context.Context, patientID int) ([]entity.Admission, error) {
	f.admissionCalls++
	return []entity.Admission{
		{RoomAdmissionID: 20, PatientID: patientID, AdmissionStatus: entity.AdmissionStatusDischarged},
	}, nil
}

func (f *fakeContextStore) ListPatientEmergencyAdmissions(_ context.Context, patientID int) ([]entity.EmergencyAdmission, error) {
	f.emergencyCalls++
	return []entity.EmergencyAdmission{
		{EmergencyAdmissionID: 30, PatientID: patientID, EmergencyBedID: 4},
	}, nil
}

func newContextUsecase() (PatientContextUsecase, *fakeContextStore) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	store := &fakeContextStore{}
	return NewPatientContextUsecase(log, store), store
}

func TestListContextOptionsFetchesOnlyMatchingList(t *testing.T) {
	cases := []struct {
		patientType entity.PatientType
		check       func(t *testing.T, store *fakeContextStore)
	}{
		{entity.PatientTypeOPD, func(t *testing.T, store *fakeContextStore) {
			assert.Equal(t, 1, store.appointmentCalls)
			assert.Zero(t, store.admissionCalls)
			assert.Zero(t, store.emergencyCalls)
		}},
		{entity.PatientTypeIPD, func(t *testing.T, store *fakeContextStore) {
			assert.Zero(t, store.appointmentCalls)
			assert.Equal(t, 1, store.admissionCalls)
			assert.Zero(t, store.emergencyCalls)
		}},
		{entity.PatientTypeEmergency, func(t *testing.T, store *fakeContextStore) {
			assert.Zero(t, store.appointmentCalls)
			assert.Zero(t, store.admissionCalls)
			assert.Equal(t, 1, store.emergencyCalls)
		}},
		{entity.PatientTypeDirect, func(t *testing.T, store *fakeContextStore) {
			assert.Zero(t, store.appointmentCalls)
			assert.Zero(t, store.admissionCalls)
			assert.Zero(t, store.emergencyCalls)
		}},
	}

	for _, tc := range cases {
		t.Run(string(tc.patientType), func(t *testing.T) {
			uc, store := newContextUsecase()

			resp, err := uc.ListContextOptions(context.Background(), 42, tc.patientType)
			require.NoError(t, err)
			assert.Equal(t, 42, resp.PatientID)
			assert.Equal(t, string(tc.patientType), resp.PatientType)
			tc.check(t, store)
		})
	}
}

func TestListContextOptionsOPDResponse(t *testing.T) {
	uc, _ := newContextUsecase()

	resp, err := uc.ListContextOptions(context.Background(), 42, entity.PatientTypeOPD)
	require.NoError(t, err)

	assert.Equal(t, "patient_appointment_id", resp.SecondaryField)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, 10, resp.Appointments[0].PatientAppointmentID)
	assert.Equal(t, "12-03-2026", resp.Appointments[0].AppointmentDate)
	assert.Equal(t, "01:05 PM", resp.Appointments[0].AppointmentTime)
	assert.Empty(t, resp.RoomAdmissions)
	assert.Empty(t, resp.EmergencyAdmissions)
}

func TestListContextOptionsDirectHasNoSecondaryField(t *testing.T) {
	uc, _ := newContextUsecase()

	resp, err := uc.ListContextOptions(context.Background(), 42, entity.PatientTypeDirect)
	require.NoError(t, err)
	assert.Empty(t, resp.SecondaryField)
	assert.Empty(t, resp.Appointments)
}

func TestListContextOptionsInvalidInput(t *testing.T) {
	uc, _ := newContextUsecase()

	_, err := uc.ListContextOptions(context.Background(), 0, entity.PatientTypeOPD)
	assert.ErrorIs(t, err, ErrMissingPatient)

	_, err = uc.ListContextOptions(context.Background(), 42, entity.PatientType("Referral"))
	assert.ErrorIs(t, err, ErrInvalidPatientType)
}
