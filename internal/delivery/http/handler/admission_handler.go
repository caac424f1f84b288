package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"hospital-ipd-engine/internal/delivery/dto"
	"hospital-ipd-engine/internal/delivery/http/middleware"
	"hospital-ipd-engine/internal/gateway/hms"
	"hospital-ipd-engine/internal/service"
	"hospital-ipd-engine/internal/usecase"
	"hospital-ipd-engine/pkg/response"
	"hospital-ipd-engine/pkg/validator"

	"github.com/gorilla/mux"
)

type AdmissionHandler struct {
	admissionUsecase usecase.AdmissionUsecase
	validator        *validator.CustomValidator
}

func NewAdmissionHandler(admissionUsecase usecase.AdmissionUsecase, validator *validator.CustomValidator) *AdmissionHandler {
	return &AdmissionHandler{
		admissionUsecase: admissionUsecase,
		validator:        validator,
	}
}

func (h *AdmissionHandler) CreateAdmission(w http.ResponseWriter, r *http.Request) {
	actingDoctorID, ok := middleware.GetDoctorIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateAdmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admission, err := h.admissionUsecase.CreateAdmission(r.Context(), actingDoctorID, &req)
	if err != nil {
		writeAdmissionError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Admission created successfully", admission)
}

func (h *AdmissionHandler) UpdateAdmission(w http.ResponseWriter, r *http.Request) {
	actingDoctorID, ok := middleware.GetDoctorIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	roomAdmissionID, err := admissionIDFromPath(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid admission ID", nil)
		return
	}

	var req dto.UpdateAdmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admission, err := h.admissionUsecase.UpdateAdmission(r.Context(), actingDoctorID, roomAdmissionID, &req)
	if err != nil {
		writeAdmissionError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Admission updated successfully", admission)
}

func (h *AdmissionHandler) UpdateAdmissionStatus(w http.ResponseWriter, r *http.Request) {
	actingDoctorID, ok := middleware.GetDoctorIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	roomAdmissionID, err := admissionIDFromPath(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid admission ID", nil)
		return
	}

	var req dto.UpdateAdmissionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admission, err := h.admissionUsecase.UpdateAdmissionStatus(r.Context(), actingDoctorID, roomAdmissionID, &req)
	if err != nil {
		writeAdmissionError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Admission status updated successfully", admission)
}

func (h *AdmissionHandler) ScheduleOT(w http.ResponseWriter, r *http.Request) {
	actingDoctorID, ok := middleware.GetDoctorIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	roomAdmissionID, err := admissionIDFromPath(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid admission ID", nil)
		return
	}

	admission, err := h.admissionUsecase.ScheduleOT(r.Context(), actingDoctorID, roomAdmissionID)
	if err != nil {
		writeAdmissionError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "OT scheduled successfully", admission)
}

func admissionIDFromPath(r *http.Request) (int, error) {
	vars := mux.Vars(r)
	return strconv.Atoi(vars["id"])
}

// writeAdmissionError maps engine errors onto HTTP statuses. Validation
// failures carry their field; upstream store failures keep the store's own
// message.
func writeAdmissionError(w http.ResponseWriter, err error) {
	var fieldErr *usecase.FieldError
	if errors.As(err, &fieldErr) {
		response.ValidationError(w, map[string]string{fieldErr.Field: fieldErr.Message})
		return
	}

	var upstreamErr *hms.UpstreamError
	if errors.As(err, &upstreamErr) {
		response.BadGateway(w, upstreamErr.Error())
		return
	}

	switch {
	case errors.Is(err, usecase.ErrBedNotAvailable):
		response.Conflict(w, err.Error())
	case errors.Is(err, service.ErrAdmissionInFlight):
		response.Conflict(w, err.Error())
	case errors.Is(err, usecase.ErrOTAlreadyScheduled):
		response.Conflict(w, err.Error())
	case errors.Is(err, usecase.ErrAdmissionNotActive):
		response.Conflict(w, err.Error())
	case errors.Is(err, usecase.ErrEmptyUpdate):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, usecase.ErrMissingActingDoctor):
		response.Unauthorized(w, err.Error())
	default:
		response.BadGateway(w, err.Error())
	}
}
