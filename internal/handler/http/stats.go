package http

import (
	"net/http"
	"strconv"

	"github.com/staffsync/leave-backend-go/internal/domain/stats"
	"github.com/staffsync/leave-backend-go/internal/handler/http/response"
	"github.com/staffsync/leave-backend-go/internal/pkg/validator"
)

type StatsHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Analytics(w http.ResponseWriter, r *http.Request)
}

type StatsHandlerImpl struct {
	statsService stats.Service
}

func NewStatsHandler(statsService stats.Service) StatsHandler {
	return &StatsHandlerImpl{statsService: statsService}
}

// Dashboard implements StatsHandler. Administrators get the
// organization-wide snapshot, everyone else their personal one.
func (h *StatsHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if actor.IsAdministrator() {
		snapshot, err := h.statsService.OrganizationalSnapshot(r.Context(), actor)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, snapshot)
		return
	}

	snapshot, err := h.statsService.PersonalSnapshot(r.Context(), actor.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, snapshot)
}

// History implements StatsHandler.
func (h *StatsHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	query := r.URL.Query()
	filter := stats.HistoryFilter{
		Status:    query.Get("status"),
		LeaveType: query.Get("type"),
	}
	if yearStr := query.Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil || !validator.IsValidYear(year) {
			response.BadRequest(w, "Invalid year filter", nil)
			return
		}
		filter.Year = year
	}

	page := 1
	if pageStr := query.Get("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}

	history, err := h.statsService.History(r.Context(), actor.ID, filter, page)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, history, &response.Meta{
		Page:       history.Page,
		Limit:      history.PerPage,
		TotalItems: int64(history.TotalItems),
		TotalPages: history.TotalPages,
	})
}

// Analytics implements StatsHandler. Admin only.
func (h *StatsHandlerImpl) Analytics(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	query := r.URL.Query()
	filter := stats.AnalyticsFilter{
		Status:    query.Get("status"),
		LeaveType: query.Get("type"),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}
	if yearStr := query.Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil || !validator.IsValidYear(year) {
			response.BadRequest(w, "Invalid year filter", nil)
			return
		}
		filter.Year = year
	}

	report, err := h.statsService.Analytics(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
