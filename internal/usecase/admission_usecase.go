package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hospital-ipd-engine/internal/converter"
	"hospital-ipd-engine/internal/delivery/dto"
	"hospital-ipd-engine/internal/domain/entity"
	"hospital-ipd-engine/internal/domain/gateway"
	"hospital-ipd-engine/internal/domain/repository"
	"hospital-ipd-engine/internal/service"
	"hospital-ipd-engine/pkg/istdate"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBedNotAvailable     = errors.New("bed is not available on the requested allocation date")
	ErrOTAlreadyScheduled  = errors.New("OT is already scheduled for this admission")
	ErrAdmissionNotActive  = errors.New("only active admissions can schedule OT")
	ErrEmptyUpdate         = errors.New("update carries no changes")
	ErrMissingActingDoctor = errors.New("acting doctor id is required")
	ErrICULayoutEmpty      = errors.New("ICU bed layout is empty")
)

// FieldError is a validation failure tied to one form field. It is detected
// before any call to the remote store reaches the wire.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func newFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

type AdmissionUsecase interface {
	CreateAdmission(ctx context.Context, actingDoctorID int, req *dto.CreateAdmissionRequest) (*dto.AdmissionResponse, error)
	UpdateAdmission(ctx context.Context, actingDoctorID int, roomAdmissionID int, req *dto.UpdateAdmissionRequest) (*dto.AdmissionResponse, error)
	UpdateAdmissionStatus(ctx context.Context, actingDoctorID int, roomAdmissionID int, req *dto.UpdateAdmissionStatusRequest) (*dto.AdmissionResponse, error)
	ScheduleOT(ctx context.Context, actingDoctorID int, roomAdmissionID int) (*dto.AdmissionResponse, error)
}

type admissionUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	admissionStore gateway.AdmissionStore
	bedStore       gateway.BedStore
	icuStore       gateway.ICUStore
	inflight       service.InflightGuard
	capacity       service.CapacityService
	audit          service.AuditService
	snapshotRepo   repository.AdmissionSnapshotRepository
}

func NewAdmissionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	admissionStore gateway.AdmissionStore,
	bedStore gateway.BedStore,
	icuStore gateway.ICUStore,
	inflight service.InflightGuard,
	capacity service.CapacityService,
	audit service.AuditService,
	snapshotRepo repository.AdmissionSnapshotRepository,
) AdmissionUsecase {
	return &admissionUsecase{
		db:             db,
		log:            log,
		admissionStore: admissionStore,
		bedStore:       bedStore,
		icuStore:       icuStore,
		inflight:       inflight,
		capacity:       capacity,
		audit:          audit,
		snapshotRepo:   snapshotRepo,
	}
}

// CreateAdmission runs the full admission workflow.
//
// Flow:
//  1. Local validation (patient context, dates, status enum) - no network
//  2. In-flight guard for the bed/date pair
//  3. Bed availability check against the store; any falsy or failed answer
//     blocks the create
//  4. Create the admission in the store
//  5. If linked to ICU: fork the ICU admission (non-fatal on failure)
//  6. Record snapshot + audit locally, refresh the capacity cache
func (u *admissionUsecase) CreateAdmission(ctx context.Context, actingDoctorID int, req *dto.CreateAdmissionRequest) (*dto.AdmissionResponse, error) {
	if actingDoctorID <= 0 {
		return nil, ErrMissingActingDoctor
	}

	admission, err := u.buildAdmission(req)
	if err != nil {
		return nil, err
	}

	// Step 2: one in-flight create per bed/date from this service. This is
	// a duplicate-submission guard, not a reservation: the store remains
	// the arbiter between independent callers.
	if err := u.inflight.Acquire(ctx, admission.RoomBedsID, admission.RoomAllocationDate); err != nil {
		return nil, err
	}
	defer u.inflight.Release(ctx, admission.RoomBedsID, admission.RoomAllocationDate)

	// Step 3: never book a potentially occupied bed. Any error from the
	// check aborts; an "occupied"-flavored upstream message surfaces as the
	// availability conflict itself.
	available, err := u.bedStore.CheckBedAvailability(ctx, admission.RoomBedsID, admission.RoomAllocationDate)
	if err != nil {
		if isUnavailableMessage(err.Error()) {
			return nil, ErrBedNotAvailable
		}
		u.log.Warnf("Bed availability check failed for bed %d on %s: %+v",
			admission.RoomBedsID, admission.RoomAllocationDate.Display(), err)
		return nil, fmt.Errorf("bed availability check failed: %w", err)
	}
	if !available {
		return nil, ErrBedNotAvailable
	}

	// Step 4
	created, err := u.admissionStore.CreateAdmission(ctx, admission)
	if err != nil {
		u.log.Warnf("Failed to create admission for patient %d: %+v", admission.PatientID, err)
		return nil, err
	}

	// Step 5: the admission already exists; a failed fork leaves it without
	// its ICU link and is never rolled back.
	if created.IsLinkedToICU.Bool() {
		icuAdmissionID, err := u.forkICUAdmission(ctx, created)
		if err != nil {
			u.log.Warnf("ICU fork failed for admission %d (admission stands without ICU link): %+v",
				created.RoomAdmissionID, err)
			u.recordAudit(actingDoctorID, entity.AuditActionICUForkFailed, created.RoomAdmissionID, nil, entity.JSON{
				"error": err.Error(),
			})
		} else {
			created.ICUAdmissionID = icuAdmissionID
			u.recordAudit(actingDoctorID, entity.AuditActionICUFork, created.RoomAdmissionID, nil, entity.JSON{
				"icu_admission_id": icuAdmissionID,
			})
		}
	}

	// Step 6
	u.recordSnapshot(created)
	u.recordAudit(actingDoctorID, entity.AuditActionAdmissionCreate, created.RoomAdmissionID, nil, converter.AdmissionToResponse(created))
	u.refreshCapacity(ctx)

	u.log.Infof("Admission created: id=%d, patient=%d, bed=%d, date=%s",
		created.RoomAdmissionID, created.PatientID, created.RoomBedsID, created.RoomAllocationDate.Display())
	return converter.AdmissionToResponse(created), nil
}

func (u *admissionUsecase) UpdateAdmission(ctx context.Context, actingDoctorID int, roomAdmissionID int, req *dto.UpdateAdmissionRequest) (*dto.AdmissionResponse, error) {
	if actingDoctorID <= 0 {
		return nil, ErrMissingActingDoctor
	}

	update, err := u.buildUpdate(roomAdmissionID, req)
	if err != nil {
		return nil, err
	}
	if update.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	old, _ := u.snapshotRepo.FindByRoomAdmissionID(u.db, roomAdmissionID)

	updated, err := u.admissionStore.UpdateAdmission(ctx, roomAdmissionID, update)
	if err != nil {
		u.log.Warnf("Failed to update admission %d: %+v", roomAdmissionID, err)
		return nil, err
	}

	u.recordSnapshot(updated)
	u.recordAudit(actingDoctorID, entity.AuditActionAdmissionUpdate, roomAdmissionID, old, converter.AdmissionToResponse(updated))
	u.refreshCapacity(ctx)

	return converter.AdmissionToResponse(updated), nil
}

// UpdateAdmissionStatus moves the admission to another lifecycle state. All
// four states are accepted as targets; the store does not enforce forward
// motion, so a backward move is allowed but flagged in the log and audit
// trail.
func (u *admissionUsecase) UpdateAdmissionStatus(ctx context.Context, actingDoctorID int, roomAdmissionID int, req *dto.UpdateAdmissionStatusRequest) (*dto.AdmissionResponse, error) {
	if actingDoctorID <= 0 {
		return nil, ErrMissingActingDoctor
	}

	next := entity.AdmissionStatus(req.AdmissionStatus)
	if !next.IsValid() {
		return nil, newFieldError("admission_status", "admission_status must be one of: Active, Moved To ICU, Surgery Scheduled, Discharged")
	}

	old, _ := u.snapshotRepo.FindByRoomAdmissionID(u.db, roomAdmissionID)
	var oldStatus entity.AdmissionStatus
	if old != nil {
		oldStatus = entity.AdmissionStatus(old.AdmissionStatus)
		if oldStatus.IsValid() && !oldStatus.IsForwardTransition(next) {
			u.log.Warnf("Backward status transition on admission %d: %s -> %s",
				roomAdmissionID, oldStatus, next)
		}
	}

	update := &entity.AdmissionUpdate{AdmissionStatus: &next}
	updated, err := u.admissionStore.UpdateAdmission(ctx, roomAdmissionID, update)
	if err != nil {
		u.log.Warnf("Failed to update status of admission %d: %+v", roomAdmissionID, err)
		return nil, err
	}

	u.recordSnapshot(updated)
	u.recordAudit(actingDoctorID, entity.AuditActionAdmissionStatus, roomAdmissionID, entity.JSON{
		"admission_status": string(oldStatus),
	}, entity.JSON{
		"admission_status": string(next),
	})
	u.refreshCapacity(ctx)

	return converter.AdmissionToResponse(updated), nil
}

// ScheduleOT flips the OT flag from No to Yes. The operation is one-way at
// this surface and only offered while the admission is still active; the
// data layer itself does not guard the field.
func (u *admissionUsecase) ScheduleOT(ctx context.Context, actingDoctorID int, roomAdmissionID int) (*dto.AdmissionResponse, error) {
	if actingDoctorID <= 0 {
		return nil, ErrMissingActingDoctor
	}

	if old, _ := u.snapshotRepo.FindByRoomAdmissionID(u.db, roomAdmissionID); old != nil {
		if old.ScheduleOT == string(entity.Yes) {
			return nil, ErrOTAlreadyScheduled
		}
		if old.AdmissionStatus != string(entity.AdmissionStatusActive) {
			return nil, ErrAdmissionNotActive
		}
	}

	scheduleOT := entity.Yes
	update := &entity.AdmissionUpdate{ScheduleOT: &scheduleOT}
	updated, err := u.admissionStore.UpdateAdmission(ctx, roomAdmissionID, update)
	if err != nil {
		u.log.Warnf("Failed to schedule OT for admission %d: %+v", roomAdmissionID, err)
		return nil, err
	}

	u.recordSnapshot(updated)
	u.recordAudit(actingDoctorID, entity.AuditActionAdmissionScheduleOT, roomAdmissionID, nil, entity.JSON{
		"schedule_ot": string(entity.Yes),
	})
	u.refreshCapacity(ctx)

	return converter.AdmissionToResponse(updated), nil
}

// buildAdmission validates the request and assembles the admission entity.
// Everything here runs before any network call.
func (u *admissionUsecase) buildAdmission(req *dto.CreateAdmissionRequest) (*entity.Admission, error) {
	patientType := entity.PatientType(req.PatientType)
	if !patientType.IsValid() {
		return nil, newFieldError("patient_type", "patient_type must be one of: OPD, IPD, Emergency, Direct")
	}

	selection := entity.ContextSelection{
		PatientID:               req.PatientID,
		PatientType:             patientType,
		PatientAppointmentID:    req.PatientAppointmentID,
		PreviousRoomAdmissionID: req.PreviousRoomAdmissionID,
		EmergencyAdmissionID:    req.EmergencyAdmissionID,
	}
	if !selection.HasRequiredSecondary() {
		field := patientType.SecondaryField()
		return nil, newFieldError(field, field+" is required for "+string(patientType)+" admissions")
	}

	allocationDate, err := istdate.Parse(req.RoomAllocationDate)
	if err != nil {
		return nil, newFieldError("room_allocation_date", "room_allocation_date is not a valid date")
	}

	var vacantDate istdate.Date
	if req.RoomVacantDate != "" {
		vacantDate, err = istdate.Parse(req.RoomVacantDate)
		if err != nil {
			return nil, newFieldError("room_vacant_date", "room_vacant_date is not a valid date")
		}
		if vacantDate.Before(allocationDate) {
			return nil, newFieldError("room_vacant_date", "room_vacant_date cannot be before room_allocation_date")
		}
	}

	status := entity.AdmissionStatusActive
	if req.AdmissionStatus != "" {
		status = entity.AdmissionStatus(req.AdmissionStatus)
		if !status.IsValid() {
			return nil, newFieldError("admission_status", "admission_status must be one of: Active, Moved To ICU, Surgery Scheduled, Discharged")
		}
	}

	return &entity.Admission{
		PatientID:               req.PatientID,
		PatientType:             patientType,
		PatientAppointmentID:    req.PatientAppointmentID,
		PreviousRoomAdmissionID: req.PreviousRoomAdmissionID,
		EmergencyAdmissionID:    req.EmergencyAdmissionID,
		AdmittingDoctorID:       req.AdmittingDoctorID,
		RoomBedsID:              req.RoomBedsID,
		RoomAllocationDate:      allocationDate,
		RoomVacantDate:          vacantDate,
		AdmissionDate:           istdate.NowIST(),
		AdmissionStatus:         status,
		Status:                  entity.RecordStatusActive,
		Diagnosis:               req.Diagnosis,
		CaseSheet:               req.CaseSheet,
		CaseSheetDetails:        req.CaseSheetDetails,
		IsLinkedToICU:           yesNoOrDefault(req.IsLinkedToICU),
		ScheduleOT:              yesNoOrDefault(req.ScheduleOT),
		ShiftToAnotherRoom:      yesNoOrDefault(req.ShiftToAnotherRoom),
		ShiftedTo:               req.ShiftedTo,
		ShiftedToDetails:        req.ShiftedToDetails,
	}, nil
}

func (u *admissionUsecase) buildUpdate(roomAdmissionID int, req *dto.UpdateAdmissionRequest) (*entity.AdmissionUpdate, error) {
	update := &entity.AdmissionUpdate{
		RoomBedsID:       req.RoomBedsID,
		Diagnosis:        req.Diagnosis,
		CaseSheet:        req.CaseSheet,
		CaseSheetDetails: req.CaseSheetDetails,
		ShiftedTo:        req.ShiftedTo,
		ShiftedToDetails: req.ShiftedToDetails,
		BillID:           req.BillID,
	}

	var allocationDate *istdate.Date
	if req.RoomAllocationDate != nil {
		d, err := istdate.Parse(*req.RoomAllocationDate)
		if err != nil {
			return nil, newFieldError("room_allocation_date", "room_allocation_date is not a valid date")
		}
		allocationDate = &d
		update.RoomAllocationDate = allocationDate
	}

	if req.RoomVacantDate != nil {
		d, err := istdate.Parse(*req.RoomVacantDate)
		if err != nil {
			return nil, newFieldError("room_vacant_date", "room_vacant_date is not a valid date")
		}
		lower := allocationDate
		if lower == nil {
			if snap, _ := u.snapshotRepo.FindByRoomAdmissionID(u.db, roomAdmissionID); snap != nil {
				if existing, err := istdate.Parse(snap.RoomAllocationDate); err == nil {
					lower = &existing
				}
			}
		}
		if lower != nil && d.Before(*lower) {
			return nil, newFieldError("room_vacant_date", "room_vacant_date cannot be before room_allocation_date")
		}
		update.RoomVacantDate = &d
	}

	if req.ShiftToAnotherRoom != nil {
		shift := yesNoOrDefault(*req.ShiftToAnotherRoom)
		update.ShiftToAnotherRoom = &shift
	}
	if req.Status != nil {
		status := entity.RecordStatus(*req.Status)
		update.Status = &status
	}
	return update, nil
}

// forkICUAdmission creates the linked ICU record and patches the admission
// with the resulting id.
func (u *admissionUsecase) forkICUAdmission(ctx context.Context, admission *entity.Admission) (int, error) {
	layout, err := u.icuStore.GetICUBedLayout(ctx)
	if err != nil {
		return 0, fmt.Errorf("ICU bed layout fetch: %w", err)
	}

	bed, degraded, ok := entity.PickICUBed(layout)
	if !ok {
		return 0, ErrICULayoutEmpty
	}
	if degraded {
		u.log.Warnf("No ICU bed marked available, falling back to first bed %d for admission %d",
			bed.ICUBedID, admission.RoomAdmissionID)
	}

	icuAdmission := &entity.ICUAdmission{
		RoomAdmissionID:         admission.RoomAdmissionID,
		ICUBedID:                bed.ICUBedID,
		PatientID:               admission.PatientID,
		PatientType:             admission.PatientType,
		PatientAppointmentID:    admission.PatientAppointmentID,
		PreviousRoomAdmissionID: admission.PreviousRoomAdmissionID,
		EmergencyAdmissionID:    admission.EmergencyAdmissionID,
		AttendingDoctorID:       admission.AdmittingDoctorID,
		Diagnosis:               admission.Diagnosis,
		CaseSheetDetails:        admission.CaseSheetDetails,
		DailyTariff:             bed.DailyTariff,
		AdmissionDate:           istdate.NowIST(),
		Status:                  entity.RecordStatusActive,
	}

	created, err := u.icuStore.CreateICUAdmission(ctx, icuAdmission)
	if err != nil {
		return 0, fmt.Errorf("ICU admission create: %w", err)
	}

	update := &entity.AdmissionUpdate{ICUAdmissionID: &created.ICUAdmissionID}
	if _, err := u.admissionStore.UpdateAdmission(ctx, admission.RoomAdmissionID, update); err != nil {
		return 0, fmt.Errorf("ICU back-reference update: %w", err)
	}
	return created.ICUAdmissionID, nil
}

func (u *admissionUsecase) recordSnapshot(admission *entity.Admission) {
	if err := u.snapshotRepo.Upsert(u.db, entity.SnapshotOf(admission)); err != nil {
		u.log.Warnf("Failed to record snapshot for admission %d (non-fatal): %+v", admission.RoomAdmissionID, err)
	}
}

func (u *admissionUsecase) recordAudit(actorID int, action string, roomAdmissionID int, oldValue, newValue interface{}) {
	if err := u.audit.LogAction(actorID, action, roomAdmissionID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to audit %s for admission %d (non-fatal): %+v", action, roomAdmissionID, err)
	}
}

func (u *admissionUsecase) refreshCapacity(ctx context.Context) {
	if err := u.capacity.Refresh(ctx); err != nil {
		u.log.Warnf("Capacity refresh failed (non-fatal): %+v", err)
	}
}

func yesNoOrDefault(s string) entity.YesNo {
	if strings.EqualFold(s, string(entity.Yes)) {
		return entity.Yes
	}
	return entity.No
}

// isUnavailableMessage classifies an availability-check failure whose text
// already says the bed is taken, so it surfaces as the conflict rather than
// a generic upstream error.
func isUnavailableMessage(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "not available") ||
		strings.Contains(lower, "unavailable") ||
		strings.Contains(lower, "occupied")
}
