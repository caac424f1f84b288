package hms

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-ipd-engine/config"
	"hospital-ipd-engine/internal/domain/entity"
	"hospital-ipd-engine/pkg/istdate"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewClient(config.HMSConfig{
		BaseURL: baseURL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	}, log)
}

func TestCheckBedAvailabilitySynonymShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want bool
	}{
		{"pascal flag", `{"IsAvailable": true}`, true},
		{"camel flag", `{"isAvailable": true}`, true},
		{"available flag", `{"Available": true}`, true},
		{"status string", `{"Status": "available"}`, true},
		{"status case-insensitive", `{"status": "Available"}`, true},
		{"enveloped", `{"data": {"isAvailable": true}}`, true},
		{"flag false", `{"IsAvailable": false}`, false},
		{"status occupied", `{"Status": "Occupied"}`, false},
		{"empty object", `{}`, false},
		{"unrelated fields only", `{"RoomBedsId": 12}`, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/room-beds/12/availability", r.URL.Path)
				assert.Equal(t, "15-03-2026", r.URL.Query().Get("allocationDate"))
				assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
				assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			date, err := istdate.Parse("15-03-2026")
			require.NoError(t, err)

			available, err := client.CheckBedAvailability(context.Background(), 12, date)
			require.NoError(t, err)
			assert.Equal(t, tc.want, available)
		})
	}
}

func TestCreateAdmissionWritesPascalCase(t *testing.T) {
	var body map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/room-admissions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"roomAdmissionId": 77, "patientId": 42, "admissionStatus": "Active", "roomAllocationDate": "15-03-2026"}`))
	}))
	defer server.Close()

	allocation, _ := istdate.Parse("15-03-2026")
	vacant, _ := istdate.Parse("20-03-2026")
	admission := &entity.Admission{
		PatientID:          42,
		PatientType:        entity.PatientTypeDirect,
		AdmittingDoctorID:  7,
		RoomBedsID:         12,
		RoomAllocationDate: allocation,
		RoomVacantDate:     vacant,
		AdmissionDate:      time.Date(2026, 3, 15, 10, 30, 0, 0, istdate.IST),
		AdmissionStatus:    entity.AdmissionStatusActive,
		Status:             entity.RecordStatusActive,
		IsLinkedToICU:      entity.No,
		ScheduleOT:         entity.No,
		ShiftToAnotherRoom: entity.No,
	}

	created, err := newTestClient(server.URL).CreateAdmission(context.Background(), admission)
	require.NoError(t, err)
	assert.Equal(t, 77, created.RoomAdmissionID)
	assert.Equal(t, 42, created.PatientID)

	// The create endpoint only accepts the PascalCase spelling and the
	// DD-MM-YYYY date form.
	assert.Equal(t, float64(42), body["PatientId"])
	assert.Equal(t, "Direct", body["PatientType"])
	assert.Equal(t, "15-03-2026", body["RoomAllocationDate"])
	assert.Equal(t, "20-03-2026", body["RoomVacantDate"])
	assert.Equal(t, "15-03-2026 10:30", body["AdmissionDate"])
	assert.Equal(t, "No", body["IsLinkedToICU"])
	assert.NotContains(t, body, "patientId")
	assert.NotContains(t, body, "patient_id")
}

func TestCreateAdmissionNullVacantDate(t *testing.T) {
	var body map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"RoomAdmissionId": 78}`))
	}))
	defer server.Close()

	allocation, _ := istdate.Parse("15-03-2026")
	_, err := newTestClient(server.URL).CreateAdmission(context.Background(), &entity.Admission{
		PatientID:          42,
		RoomAllocationDate: allocation,
	})
	require.NoError(t, err)

	require.Contains(t, body, "RoomVacantDate")
	assert.Nil(t, body["RoomVacantDate"])
}

func TestCreateAdmissionMissingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "created"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).CreateAdmission(context.Background(), &entity.Admission{PatientID: 42})
	assert.Error(t, err)
}

func TestCreateAdmissionUpstreamErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"Message": "Room bed is not available for the selected date"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).CreateAdmission(context.Background(), &entity.Admission{PatientID: 42})

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusUnprocessableEntity, upErr.StatusCode)
	assert.Equal(t, "Room bed is not available for the selected date", upErr.Message)
}

func TestUpdateAdmissionSendsOnlyPatchedFields(t *testing.T) {
	var body map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/room-admissions/77", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"data": {"RoomAdmissionId": 77, "AdmissionStatus": "Discharged"}}`))
	}))
	defer server.Close()

	status := entity.AdmissionStatusDischarged
	updated, err := newTestClient(server.URL).UpdateAdmission(context.Background(), 77, &entity.AdmissionUpdate{
		AdmissionStatus: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AdmissionStatusDischarged, updated.AdmissionStatus)

	assert.Equal(t, map[string]interface{}{"AdmissionStatus": "Discharged"}, body)
}

func TestUpdateAdmissionFallsBackToRequestID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"AdmissionStatus": "Active"}`))
	}))
	defer server.Close()

	status := entity.AdmissionStatusActive
	updated, err := newTestClient(server.URL).UpdateAdmission(context.Background(), 77, &entity.AdmissionUpdate{
		AdmissionStatus: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, 77, updated.RoomAdmissionID)
}

func TestGetICUBedLayoutCasingVariants(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/icu-beds/layout", r.URL.Path)
		w.Write([]byte(`{"data": [
			{"IcuBedId": 1, "bedNo": "ICU-1", "status": "Occupied", "dailyTariff": 4500},
			{"icuBedId": 2, "BedNumber": "ICU-2", "BedStatus": "Available", "BedCharge": "5000.50"}
		]}`))
	}))
	defer server.Close()

	beds, err := newTestClient(server.URL).GetICUBedLayout(context.Background())
	require.NoError(t, err)
	require.Len(t, beds, 2)

	assert.Equal(t, 1, beds[0].ICUBedID)
	assert.Equal(t, "ICU-1", beds[0].BedNo)
	assert.False(t, beds[0].IsAvailable())

	assert.Equal(t, 2, beds[1].ICUBedID)
	assert.Equal(t, "ICU-2", beds[1].BedNo)
	assert.True(t, beds[1].IsAvailable())
	assert.Equal(t, "5000.5", beds[1].DailyTariff.String())
}

func TestListPatientAppointments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/patients/42/appointments", r.URL.Path)
		w.Write([]byte(`[
			{"patientAppointmentId": 10, "patientId": 42, "doctorId": 3, "appointmentDate": "2026-03-12", "appointmentTime": "13:05", "status": "Open"}
		]`))
	}))
	defer server.Close()

	appointments, err := newTestClient(server.URL).ListPatientAppointments(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, appointments, 1)

	assert.Equal(t, 10, appointments[0].PatientAppointmentID)
	assert.Equal(t, "12-03-2026", appointments[0].AppointmentDate.Display())
	assert.Equal(t, "13:05", appointments[0].AppointmentTime)
}

func TestGetRoomCapacityOverview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rooms/capacity-overview", r.URL.Path)
		w.Write([]byte(`{"data": {
			"General": {"total": 40, "occupied": 25, "available": 15},
			"Private": {"Total": 10, "Occupied": 9, "Available": 1}
		}}`))
	}))
	defer server.Close()

	overview, err := newTestClient(server.URL).GetRoomCapacityOverview(context.Background())
	require.NoError(t, err)
	require.Len(t, overview, 2)

	assert.Equal(t, entity.RoomCapacity{Total: 40, Occupied: 25, Available: 15}, overview["General"])
	assert.Equal(t, entity.RoomCapacity{Total: 10, Occupied: 9, Available: 1}, overview["Private"])
}
