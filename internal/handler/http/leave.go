package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffsync/leave-backend-go/internal/domain/leave"
	"github.com/staffsync/leave-backend-go/internal/domain/user"
	"github.com/staffsync/leave-backend-go/internal/handler/http/response"
	"github.com/staffsync/leave-backend-go/internal/pkg/validator"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)

	Approve(w http.ResponseWriter, r *http.Request)
	Unapprove(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Unreject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Uncancel(w http.ResponseWriter, r *http.Request)

	UpdateHRComments(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler. The owner always comes from the verified
// token, never from the request body.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		slog.Error("Create leave: failed to get JWT claims", "error", err)
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = actor.ID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.leaveService.CreateLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request sent, wait for admin's response", created)
}

// Get implements LeaveHandler.
func (h *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid leave id", nil)
		return
	}

	detail, err := h.leaveService.GetLeave(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// My implements LeaveHandler.
func (h *LeaveHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	leaves, err := h.leaveService.ListMyLeaves(r.Context(), actor.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// List implements LeaveHandler. Admin-only; an optional status query
// narrows the list to one lifecycle state.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	status := leave.Status(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		response.BadRequest(w, "Unknown status filter", nil)
		return
	}

	leaves, err := h.leaveService.ListLeaves(r.Context(), actor, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Leave successfully approved", h.leaveService.Approve)
}

func (h *LeaveHandlerImpl) Unapprove(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Leave is back in pending list", h.leaveService.Unapprove)
}

func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Leave is rejected", h.leaveService.Reject)
}

func (h *LeaveHandlerImpl) Unreject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Leave is now in pending list", h.leaveService.Unreject)
}

func (h *LeaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Leave is cancelled", h.leaveService.Cancel)
}

func (h *LeaveHandlerImpl) Uncancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Leave is uncancelled, now in pending list", h.leaveService.Uncancel)
}

// UpdateHRComments implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateHRComments(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.UpdateHRCommentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateHRComments decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.leaveService.UpdateHRComments(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "HR comments updated", updated)
}

type transitionFunc func(ctx context.Context, actor user.Actor, id string) (leave.LeaveResponse, error)

func (h *LeaveHandlerImpl) transition(w http.ResponseWriter, r *http.Request, message string, fn transitionFunc) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid leave id", nil)
		return
	}

	updated, err := fn(r.Context(), actor, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, updated)
}
