package converter

import (
	"hospital-ipd-engine/internal/delivery/dto"
	"hospital-ipd-engine/internal/domain/entity"
	"hospital-ipd-engine/pkg/istdate"
)

// AdmissionToResponse converts an Admission entity to its response DTO.
// Dates go out in the DD-MM-YYYY display form.
func AdmissionToResponse(a *entity.Admission) *dto.AdmissionResponse {
	if a == nil {
		return nil
	}

	resp := &dto.AdmissionResponse{
		RoomAdmissionID:         a.RoomAdmissionID,
		PatientID:               a.PatientID,
		PatientType:             string(a.PatientType),
		PatientAppointmentID:    a.PatientAppointmentID,
		PreviousRoomAdmissionID: a.PreviousRoomAdmissionID,
		EmergencyAdmissionID:    a.EmergencyAdmissionID,
		AdmittingDoctorID:       a.AdmittingDoctorID,
		RoomBedsID:              a.RoomBedsID,
		RoomAllocationDate:      a.RoomAllocationDate.Display(),
		RoomVacantDate:          a.RoomVacantDate.Display(),
		AdmissionStatus:         string(a.AdmissionStatus),
		Status:                  string(a.Status),
		Diagnosis:               a.Diagnosis,
		CaseSheet:               a.CaseSheet,
		CaseSheetDetails:        a.CaseSheetDetails,
		IsLinkedToICU:           string(a.IsLinkedToICU),
		ScheduleOT:              string(a.ScheduleOT),
		ShiftToAnotherRoom:      string(a.ShiftToAnotherRoom),
		ShiftedTo:               a.ShiftedTo,
		ShiftedToDetails:        a.ShiftedToDetails,
		ICUAdmissionID:          a.ICUAdmissionID,
		OTAdmissionID:           a.OTAdmissionID,
		BillID:                  a.BillID,
	}
	if !a.AdmissionDate.IsZero() {
		resp.AdmissionDate = a.AdmissionDate.In(istdate.IST).Format("02-01-2006 15:04")
	}
	return resp
}

func AdmissionsToResponses(admissions []entity.Admission) []dto.AdmissionResponse {
	responses := make([]dto.AdmissionResponse, 0, len(admissions))
	for i := range admissions {
		responses = append(responses, *AdmissionToResponse(&admissions[i]))
	}
	return responses
}

func AppointmentToResponse(a *entity.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		PatientAppointmentID: a.PatientAppointmentID,
		DoctorID:             a.DoctorID,
		AppointmentDate:      a.AppointmentDate.Display(),
		AppointmentTime:      displayTime(a.AppointmentTime),
		Status:               a.Status,
	}
}

// displayTime converts a 24-hour "HH:MM" to its 12-hour display form.
// Unparseable values pass through unchanged.
func displayTime(hhmm string) string {
	if hhmm == "" {
		return ""
	}
	display, err := istdate.FormatTimeToDisplay(hhmm)
	if err != nil {
		return hhmm
	}
	return display
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, AppointmentToResponse(&appointments[i]))
	}
	return responses
}

func EmergencyAdmissionToResponse(e *entity.EmergencyAdmission) dto.EmergencyAdmissionResponse {
	return dto.EmergencyAdmissionResponse{
		EmergencyAdmissionID: e.EmergencyAdmissionID,
		EmergencyBedID:       e.EmergencyBedID,
		AdmissionDate:        e.AdmissionDate.Display(),
		Status:               e.Status,
	}
}

func EmergencyAdmissionsToResponses(admissions []entity.EmergencyAdmission) []dto.EmergencyAdmissionResponse {
	responses := make([]dto.EmergencyAdmissionResponse, 0, len(admissions))
	for i := range admissions {
		responses = append(responses, EmergencyAdmissionToResponse(&admissions[i]))
	}
	return responses
}

func SnapshotToResponse(s *entity.AdmissionSnapshot) dto.AdmissionSnapshotResponse {
	return dto.AdmissionSnapshotResponse{
		RoomAdmissionID:    s.RoomAdmissionID,
		PatientID:          s.PatientID,
		PatientType:        s.PatientType,
		AdmittingDoctorID:  s.AdmittingDoctorID,
		RoomBedsID:         s.RoomBedsID,
		RoomAllocationDate: displayDate(s.RoomAllocationDate),
		RoomVacantDate:     displayDate(s.RoomVacantDate),
		AdmissionStatus:    s.AdmissionStatus,
		ScheduleOT:         s.ScheduleOT,
		IsLinkedToICU:      s.IsLinkedToICU,
		ICUAdmissionID:     s.ICUAdmissionID,
		Status:             s.Status,
	}
}

func SnapshotsToResponses(snapshots []entity.AdmissionSnapshot) []dto.AdmissionSnapshotResponse {
	responses := make([]dto.AdmissionSnapshotResponse, 0, len(snapshots))
	for i := range snapshots {
		responses = append(responses, SnapshotToResponse(&snapshots[i]))
	}
	return responses
}

// displayDate renders a stored YYYY-MM-DD date in the DD-MM-YYYY display
// form. Unparseable values pass through unchanged.
func displayDate(iso string) string {
	if iso == "" {
		return ""
	}
	d, err := istdate.Parse(iso)
	if err != nil {
		return iso
	}
	return d.Display()
}

func CapacityToResponse(overview entity.CapacityOverview) *dto.CapacityOverviewResponse {
	resp := &dto.CapacityOverviewResponse{
		Rooms: make(map[string]dto.RoomCapacityResponse, len(overview)),
	}
	for roomType, counts := range overview {
		resp.Rooms[roomType] = dto.RoomCapacityResponse{
			Total:     counts.Total,
			Occupied:  counts.Occupied,
			Available: counts.Available,
		}
	}
	return resp
}

func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, dto.AuditLogResponse{
			ID:        log.ID,
			ActorID:   log.ActorID,
			Action:    log.Action,
			Metadata:  log.Metadata,
			CreatedAt: log.CreatedAt,
		})
	}
	return responses
}
