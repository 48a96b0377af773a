package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/invitation"
	"github.com/paycycle-hq/paycycle-backend-go/internal/handler/http/response"
)

type InvitationHandler interface {
	Invite(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Resend(w http.ResponseWriter, r *http.Request)
	Revoke(w http.ResponseWriter, r *http.Request)

	// Public, token-scoped
	GetByToken(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
}

type invitationHandlerImpl struct {
	invitationService invitation.InvitationService
}

func NewInvitationHandler(invitationService invitation.InvitationService) InvitationHandler {
	return &invitationHandlerImpl{invitationService: invitationService}
}

func (h *invitationHandlerImpl) Invite(w http.ResponseWriter, r *http.Request) {
	var req invitation.InviteEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.invitationService.InviteEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invitation sent", result)
}

func (h *invitationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	result, total, err := h.invitationService.ListInvitations(r.Context(), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
	})
}

func (h *invitationHandlerImpl) Resend(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invitation ID is required", nil)
		return
	}

	result, err := h.invitationService.ResendInvitation(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invitation resent", result)
}

func (h *invitationHandlerImpl) Revoke(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invitation ID is required", nil)
		return
	}

	if err := h.invitationService.RevokeInvitation(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invitation revoked", nil)
}

func (h *invitationHandlerImpl) GetByToken(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		response.BadRequest(w, "Token is required", nil)
		return
	}

	result, err := h.invitationService.GetByToken(r.Context(), token)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invitationHandlerImpl) Accept(w http.ResponseWriter, r *http.Request) {
	var req invitation.AcceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.Token = chi.URLParam(r, "token")

	if err := h.invitationService.AcceptInvitation(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invitation accepted", nil)
}
