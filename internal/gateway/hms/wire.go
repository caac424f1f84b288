package hms

import (
	"strconv"
	"strings"

	"hospital-ipd-engine/internal/domain/entity"
	"hospital-ipd-engine/pkg/istdate"

	"github.com/shopspring/decimal"
)

// The store is inconsistent about field casing across endpoints: reads may
// come back camelCase or PascalCase, while the admission create/update
// endpoints require PascalCase on write. All tolerance lives in this file;
// the rest of the engine only sees typed entities.

type payload map[string]interface{}

// keyVariants expands a PascalCase key into the spellings seen in the wild.
func keyVariants(key string) []string {
	if key == "" {
		return nil
	}
	lowerFirst := strings.ToLower(key[:1]) + key[1:]
	if lowerFirst == key {
		return []string{key, strings.ToLower(key)}
	}
	return []string{key, lowerFirst, strings.ToLower(key)}
}

func lookup(m payload, keys ...string) (interface{}, bool) {
	for _, key := range keys {
		for _, variant := range keyVariants(key) {
			if v, ok := m[variant]; ok && v != nil {
				return v, true
			}
		}
	}
	return nil, false
}

func stringField(m payload, keys ...string) string {
	v, ok := lookup(m, keys...)
	if !ok {
		return ""
	}
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

func intField(m payload, keys ...string) int {
	v, ok := lookup(m, keys...)
	if !ok {
		return 0
	}
	switch x := v.(type) {
	case float64:
		return int(x)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func boolField(m payload, keys ...string) (value, present bool) {
	v, ok := lookup(m, keys...)
	if !ok {
		return false, false
	}
	switch x := v.(type) {
	case bool:
		return x, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			return false, false
		}
		return b, true
	case float64:
		return x != 0, true
	default:
		return false, false
	}
}

func dateField(m payload, keys ...string) istdate.Date {
	s := stringField(m, keys...)
	if s == "" {
		return istdate.Date{}
	}
	d, err := istdate.Parse(s)
	if err != nil {
		return istdate.Date{}
	}
	return d
}

func decimalField(m payload, keys ...string) decimal.Decimal {
	v, ok := lookup(m, keys...)
	if !ok {
		return decimal.Zero
	}
	switch x := v.(type) {
	case float64:
		return decimal.NewFromFloat(x)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

func yesNoField(m payload, keys ...string) entity.YesNo {
	if strings.EqualFold(stringField(m, keys...), "yes") {
		return entity.Yes
	}
	return entity.No
}

// displayDateOrNil renders the DD-MM-YYYY wire form, or nil for an unset
// date (RoomVacantDate is nullable upstream).
func displayDateOrNil(d istdate.Date) interface{} {
	if d.IsZero() {
		return nil
	}
	return d.Display()
}

func decodeAdmission(m payload) *entity.Admission {
	a := &entity.Admission{
		RoomAdmissionID:         intField(m, "RoomAdmissionId"),
		PatientID:               intField(m, "PatientId"),
		PatientType:             entity.PatientType(stringField(m, "PatientType")),
		PatientAppointmentID:    intField(m, "PatientAppointmentId"),
		PreviousRoomAdmissionID: intField(m, "PreviousRoomAdmissionId"),
		EmergencyAdmissionID:    intField(m, "EmergencyAdmissionId"),
		AdmittingDoctorID:       intField(m, "AdmittingDoctorId"),
		RoomBedsID:              intField(m, "RoomBedsId"),
		RoomAllocationDate:      dateField(m, "RoomAllocationDate"),
		RoomVacantDate:          dateField(m, "RoomVacantDate"),
		AdmissionStatus:         entity.AdmissionStatus(stringField(m, "AdmissionStatus")),
		Status:                  entity.RecordStatus(stringField(m, "Status")),
		Diagnosis:               stringField(m, "Diagnosis"),
		CaseSheet:               stringField(m, "CaseSheet"),
		CaseSheetDetails:        stringField(m, "CaseSheetDetails"),
		IsLinkedToICU:           yesNoField(m, "IsLinkedToICU", "IsLinkedToIcu"),
		ScheduleOT:              yesNoField(m, "ScheduleOT", "ScheduleOt"),
		ShiftToAnotherRoom:      yesNoField(m, "ShiftToAnotherRoom"),
		ShiftedTo:               intField(m, "ShiftedTo"),
		ShiftedToDetails:        stringField(m, "ShiftedToDetails"),
		ICUAdmissionID:          intField(m, "ICUAdmissionId", "IcuAdmissionId"),
		OTAdmissionID:           intField(m, "OTAdmissionId", "OtAdmissionId"),
		BillID:                  intField(m, "BillId"),
	}
	if s := stringField(m, "AdmissionDate"); s != "" {
		if d, err := istdate.Parse(s); err == nil {
			a.AdmissionDate = d.Time()
		}
	}
	return a
}

func encodeAdmission(a *entity.Admission) payload {
	return payload{
		"PatientId":               a.PatientID,
		"PatientType":             string(a.PatientType),
		"PatientAppointmentId":    a.PatientAppointmentID,
		"PreviousRoomAdmissionId": a.PreviousRoomAdmissionID,
		"EmergencyAdmissionId":    a.EmergencyAdmissionID,
		"AdmittingDoctorId":       a.AdmittingDoctorID,
		"RoomBedsId":              a.RoomBedsID,
		"RoomAllocationDate":      a.RoomAllocationDate.Display(),
		"RoomVacantDate":          displayDateOrNil(a.RoomVacantDate),
		"AdmissionDate":           a.AdmissionDate.In(istdate.IST).Format("02-01-2006 15:04"),
		"AdmissionStatus":         string(a.AdmissionStatus),
		"Status":                  string(a.Status),
		"Diagnosis":               a.Diagnosis,
		"CaseSheet":               a.CaseSheet,
		"CaseSheetDetails":        a.CaseSheetDetails,
		"IsLinkedToICU":           string(a.IsLinkedToICU),
		"ScheduleOT":              string(a.ScheduleOT),
		"ShiftToAnotherRoom":      string(a.ShiftToAnotherRoom),
		"ShiftedTo":               a.ShiftedTo,
		"ShiftedToDetails":        a.ShiftedToDetails,
		"OTAdmissionId":           a.OTAdmissionID,
		"ICUAdmissionId":          a.ICUAdmissionID,
		"BillId":                  a.BillID,
	}
}

func encodeAdmissionUpdate(u *entity.AdmissionUpdate) payload {
	m := payload{}
	if u.AdmissionStatus != nil {
		m["AdmissionStatus"] = string(*u.AdmissionStatus)
	}
	if u.Status != nil {
		m["Status"] = string(*u.Status)
	}
	if u.RoomBedsID != nil {
		m["RoomBedsId"] = *u.RoomBedsID
	}
	if u.RoomAllocationDate != nil {
		m["RoomAllocationDate"] = u.RoomAllocationDate.Display()
	}
	if u.RoomVacantDate != nil {
		m["RoomVacantDate"] = displayDateOrNil(*u.RoomVacantDate)
	}
	if u.Diagnosis != nil {
		m["Diagnosis"] = *u.Diagnosis
	}
	if u.CaseSheet != nil {
		m["CaseSheet"] = *u.CaseSheet
	}
	if u.CaseSheetDetails != nil {
		m["CaseSheetDetails"] = *u.CaseSheetDetails
	}
	if u.ScheduleOT != nil {
		m["ScheduleOT"] = string(*u.ScheduleOT)
	}
	if u.ShiftToAnotherRoom != nil {
		m["ShiftToAnotherRoom"] = string(*u.ShiftToAnotherRoom)
	}
	if u.ShiftedTo != nil {
		m["ShiftedTo"] = *u.ShiftedTo
	}
	if u.ShiftedToDetails != nil {
		m["ShiftedToDetails"] = *u.ShiftedToDetails
	}
	if u.ICUAdmissionID != nil {
		m["ICUAdmissionId"] = *u.ICUAdmissionID
	}
	if u.OTAdmissionID != nil {
		m["OTAdmissionId"] = *u.OTAdmissionID
	}
	if u.BillID != nil {
		m["BillId"] = *u.BillID
	}
	return m
}

func decodeAppointment(m payload) entity.Appointment {
	return entity.Appointment{
		PatientAppointmentID: intField(m, "PatientAppointmentId", "AppointmentId"),
		PatientID:            intField(m, "PatientId"),
		DoctorID:             intField(m, "DoctorId"),
		AppointmentDate:      dateField(m, "AppointmentDate"),
		AppointmentTime:      stringField(m, "AppointmentTime"),
		Status:               stringField(m, "Status"),
	}
}

func decodeEmergencyAdmission(m payload) entity.EmergencyAdmission {
	return entity.EmergencyAdmission{
		EmergencyAdmissionID: intField(m, "EmergencyAdmissionId"),
		PatientID:            intField(m, "PatientId"),
		EmergencyBedID:       intField(m, "EmergencyBedId"),
		AdmissionDate:        dateField(m, "AdmissionDate"),
		Status:               stringField(m, "Status"),
	}
}

func decodeICUBed(m payload) entity.ICUBed {
	return entity.ICUBed{
		ICUBedID:    intField(m, "ICUBedId", "IcuBedId"),
		BedNo:       stringField(m, "BedNo", "BedNumber"),
		Status:      stringField(m, "Status", "BedStatus"),
		DailyTariff: decimalField(m, "DailyTariff", "BedCharge"),
	}
}

func encodeICUAdmission(a *entity.ICUAdmission) payload {
	return payload{
		"RoomAdmissionId":         a.RoomAdmissionID,
		"ICUBedId":                a.ICUBedID,
		"PatientId":               a.PatientID,
		"PatientType":             string(a.PatientType),
		"PatientAppointmentId":    a.PatientAppointmentID,
		"PreviousRoomAdmissionId": a.PreviousRoomAdmissionID,
		"EmergencyAdmissionId":    a.EmergencyAdmissionID,
		"AttendingDoctorId":       a.AttendingDoctorID,
		"Diagnosis":               a.Diagnosis,
		"CaseSheetDetails":        a.CaseSheetDetails,
		"DailyTariff":             a.DailyTariff.String(),
		"AdmissionDate":           a.AdmissionDate.In(istdate.IST).Format("02-01-2006 15:04"),
		"Status":                  string(a.Status),
	}
}

func decodeICUAdmission(m payload) *entity.ICUAdmission {
	return &entity.ICUAdmission{
		ICUAdmissionID:          intField(m, "ICUAdmissionId", "IcuAdmissionId"),
		RoomAdmissionID:         intField(m, "RoomAdmissionId"),
		ICUBedID:                intField(m, "ICUBedId", "IcuBedId"),
		PatientID:               intField(m, "PatientId"),
		PatientType:             entity.PatientType(stringField(m, "PatientType")),
		PatientAppointmentID:    intField(m, "PatientAppointmentId"),
		PreviousRoomAdmissionID: intField(m, "PreviousRoomAdmissionId"),
		EmergencyAdmissionID:    intField(m, "EmergencyAdmissionId"),
		AttendingDoctorID:       intField(m, "AttendingDoctorId"),
		Diagnosis:               stringField(m, "Diagnosis"),
		CaseSheetDetails:        stringField(m, "CaseSheetDetails"),
		DailyTariff:             decimalField(m, "DailyTariff", "BedCharge"),
		Status:                  entity.RecordStatus(stringField(m, "Status")),
	}
}

// availabilityFromPayload applies the conflict decision rule: the bed is
// considered free when any of the known synonym flags is present and true,
// or the status string says "available". Anything else blocks the booking.
func availabilityFromPayload(m payload) bool {
	for _, key := range []string{"IsAvailable", "Available"} {
		if v, ok := boolField(m, key); ok && v {
			return true
		}
	}
	if s := stringField(m, "Status"); s != "" && strings.EqualFold(s, "available") {
		return true
	}
	return false
}
