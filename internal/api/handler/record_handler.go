package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/midori-health/condition-tracker/internal/api/validation"
	"github.com/midori-health/condition-tracker/internal/domain"
	"github.com/midori-health/condition-tracker/internal/service"
	"github.com/midori-health/condition-tracker/pkg/problem"
)

type RecordHandler struct {
	service service.RecordService
}

func NewRecordHandler(service service.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// Upsert handles PUT /v1/users/{userId}/records/{dateKey}
// @Summary Upsert a daily record
// @Description Write the record for one calendar day. Repeat calls for the same day replace the earlier values. Omitted fields mean not logged.
// @Tags records
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param dateKey path string true "Calendar day (YYYY-MM-DD)" example(2026-03-15)
// @Param request body domain.UpsertDailyRecordRequest true "Daily signal values"
// @Success 200 {object} domain.DailyRecordResponse "Record written"
// @Failure 400 {object} problem.Problem "Invalid body, user ID, or date key"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/records/{dateKey} [put]
func (h *RecordHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}
	dateKey := chi.URLParam(r, "dateKey")

	var req domain.UpsertDailyRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	record, err := h.service.Upsert(r.Context(), userID, dateKey, &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateKey) {
			problem.BadRequest("Date key must be a valid YYYY-MM-DD date").Write(w)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to write record").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record.ToResponse())
}

// GetByDate handles GET /v1/users/{userId}/records/{dateKey}
// @Summary Get one daily record
// @Description Fetch the record for one calendar day, if any exists.
// @Tags records
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param dateKey path string true "Calendar day (YYYY-MM-DD)" example(2026-03-15)
// @Success 200 {object} domain.DailyRecordResponse
// @Failure 400 {object} problem.Problem "Invalid user ID or date key"
// @Failure 404 {object} problem.Problem "No record for that day"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/records/{dateKey} [get]
func (h *RecordHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}
	dateKey := chi.URLParam(r, "dateKey")

	record, err := h.service.GetByDate(r.Context(), userID, dateKey)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateKey) {
			problem.BadRequest("Date key must be a valid YYYY-MM-DD date").Write(w)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Record not found").Write(w)
			return
		}
		problem.InternalError("Failed to get record").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record.ToResponse())
}

// List handles GET /v1/users/{userId}/records
// @Summary List daily records
// @Description Fetch paginated daily records, newest first. Filter by date key range.
// @Tags records
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "Earliest date key (YYYY-MM-DD)" example(2026-01-01)
// @Param to query string false "Latest date key (YYYY-MM-DD)" example(2026-03-15)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.DailyRecordListResponse "Records with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/records [get]
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseRecordFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list records").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseRecordFilter(r *http.Request) (domain.DailyRecordFilter, []problem.FieldError) {
	var filter domain.DailyRecordFilter
	filter.From = r.URL.Query().Get("from")
	filter.To = r.URL.Query().Get("to")

	fieldErrors := validation.Validate(filter)

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if fieldErrors != nil {
		return domain.DailyRecordFilter{}, fieldErrors
	}
	return filter, nil
}
