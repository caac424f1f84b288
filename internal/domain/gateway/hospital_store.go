package gateway

import (
	"context"

	"hospital-ipd-engine/internal/domain/entity"
	"hospital-ipd-engine/pkg/istdate"
)

// PatientContextStore lists the upstream contexts a patient may be admitted
// against. Each list backs one patient-type choice on the admission form.
type PatientContextStore interface {
	ListPatientAppointments(ctx context.Context, patientID int) ([]entity.Appointment, error)
	ListPatientRoomAdmissions(ctx context.Context, patientID int) ([]entity.Admission, error)
	ListPatientEmergencyAdmissions(ctx context.Context, patientID int) ([]entity.EmergencyAdmission, error)
}

// BedStore answers whether a bed is free on an allocation date. The check
// endpoint takes the date in DD-MM-YYYY form regardless of how the store
// keeps it internally.
type BedStore interface {
	CheckBedAvailability(ctx context.Context, roomBedsID int, allocationDate istdate.Date) (bool, error)
}

// AdmissionStore owns admission records. There is no delete: records are
// created once and mutated in place.
type AdmissionStore interface {
	CreateAdmission(ctx context.Context, admission *entity.Admission) (*entity.Admission, error)
	UpdateAdmission(ctx context.Context, roomAdmissionID int, update *entity.AdmissionUpdate) (*entity.Admission, error)
}

// ICUStore serves the ICU fork: the bed layout to pick from and the forked
// admission record itself.
type ICUStore interface {
	GetICUBedLayout(ctx context.Context) ([]entity.ICUBed, error)
	CreateICUAdmission(ctx context.Context, admission *entity.ICUAdmission) (*entity.ICUAdmission, error)
}

// CapacityStore exposes the read-only occupancy aggregate the dashboard
// shows.
type CapacityStore interface {
	GetRoomCapacityOverview(ctx context.Context) (entity.CapacityOverview, error)
}
