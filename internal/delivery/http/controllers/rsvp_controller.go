package controllers

import (
	"log/slog"
	"net/http"

	h "eventrsvp/internal/delivery/http/helpers"
	"eventrsvp/internal/domain"
)

type RSVPController struct {
	Logger  *slog.Logger
	Service domain.RSVPService
}

func NewRSVPController(logger *slog.Logger, svc domain.RSVPService) *RSVPController {
	return &RSVPController{
		Logger:  logger,
		Service: svc,
	}
}

// Health godoc
// @Summary Health check
// @Description Liveness probe. Responds 200 with an empty body even when the store is unreachable.
// @Tags rsvp
// @Success 200 "empty body"
// @Router /rsvp [head]
func (c *RSVPController) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Create godoc
// @Summary Submit an RSVP
// @Description Store a guest's attendance confirmation. Names are unique case-insensitively. id and timestamp are assigned by the server.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param body body domain.RSVPSubmission true "RSVP submission"
// @Success 201 {object} domain.RSVP
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_error"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Failure 503 {object} helpers.APIResponse "error.code: service_unavailable"
// @Router /rsvp [post]
func (c *RSVPController) Create(w http.ResponseWriter, r *http.Request) {
	var sub domain.RSVPSubmission
	if !h.DecodeAndValidate(w, r, &sub) {
		return
	}
	rsvp, err := c.Service.Create(r.Context(), &sub)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, rsvp)
}

// List godoc
// @Summary List RSVPs
// @Description All RSVPs, most recent first. An empty store yields an empty array.
// @Tags rsvp
// @Produce json
// @Success 200 {array} domain.RSVP
// @Failure 503 {object} helpers.APIResponse "error.code: service_unavailable"
// @Router /rsvp [get]
func (c *RSVPController) List(w http.ResponseWriter, r *http.Request) {
	rsvps, err := c.Service.List(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	if rsvps == nil {
		rsvps = []*domain.RSVP{}
	}
	h.WriteJSON(w, http.StatusOK, rsvps)
}

func (c *RSVPController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := h.WriteDomainError(w, err)
	if status >= http.StatusInternalServerError {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "status", status, "err", err)
	}
}
