package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "eventrsvp/internal/delivery/http/helpers"
	"eventrsvp/internal/domain"
	"eventrsvp/internal/metrics"
)

// LoginRequest is the request body for POST /login
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse is the response body for a successful POST /login
type LoginResponse struct {
	Authenticated bool   `json:"authenticated"`
	Message       string `json:"message"`
}

type PanelController struct {
	Logger  *slog.Logger
	Service domain.PanelAuthService
}

func NewPanelController(logger *slog.Logger, svc domain.PanelAuthService) *PanelController {
	return &PanelController{
		Logger:  logger,
		Service: svc,
	}
}

// Login godoc
// @Summary Panel login
// @Description Check the panel passphrase. No session or token is issued.
// @Tags panel
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Panel passphrase"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_error"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /login [post]
func (c *PanelController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		metrics.PanelLogins.WithLabelValues("malformed").Inc()
		return
	}
	if err := c.Service.Authenticate(r.Context(), req.Password); err != nil {
		switch {
		case errors.Is(err, domain.ErrAuthentication):
			metrics.PanelLogins.WithLabelValues("rejected").Inc()
			c.Logger.WarnContext(r.Context(), "panel login rejected")
		case errors.Is(err, domain.ErrConfiguration):
			metrics.PanelLogins.WithLabelValues("unconfigured").Inc()
			c.Logger.ErrorContext(r.Context(), "panel login attempted without a configured password", "err", err)
		default:
			metrics.PanelLogins.WithLabelValues("error").Inc()
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		}
		h.WriteDomainError(w, err)
		return
	}
	metrics.PanelLogins.WithLabelValues("accepted").Inc()
	h.WriteJSON(w, http.StatusOK, LoginResponse{
		Authenticated: true,
		Message:       "authentication successful",
	})
}
