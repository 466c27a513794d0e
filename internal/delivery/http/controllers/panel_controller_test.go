package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventrsvp/internal/delivery/http/helpers"
	"eventrsvp/internal/domain"
	"eventrsvp/internal/metrics"
)

type fakePanelAuthService struct {
	err      error
	lastPass string
	called   bool
}

func (f *fakePanelAuthService) Authenticate(ctx context.Context, passphrase string) error {
	f.called = true
	f.lastPass = passphrase
	return f.err
}

func TestPanelController_Login(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		fakeErr      error
		wantStatus   int
		wantBodyCode string
		wantResult   string
	}{
		{"correct", `{"password":"jantar2025"}`, nil, http.StatusOK, "", "accepted"},
		{"incorrect", `{"password":"nope"}`, domain.ErrAuthentication, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "rejected"},
		{"unconfigured", `{"password":"x"}`, domain.ErrConfiguration, http.StatusInternalServerError, helpers.ErrCodeInternalError, "unconfigured"},
		{"malformed", `{"password":`, nil, http.StatusUnprocessableEntity, helpers.ErrCodeValidation, "malformed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(metrics.PanelLogins.WithLabelValues(tt.wantResult))
			svc := &fakePanelAuthService{err: tt.fakeErr}
			ctrl := NewPanelController(discardLogger(), svc)
			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			ctrl.Login(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, before+1, testutil.ToFloat64(metrics.PanelLogins.WithLabelValues(tt.wantResult)))
			if tt.wantBodyCode != "" {
				var resp helpers.APIResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantBodyCode, resp.Error.Code)
				return
			}
			assert.Equal(t, "jantar2025", svc.lastPass)
			var got LoginResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.True(t, got.Authenticated)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestPanelController_Login_missing_password_is_checked(t *testing.T) {
	svc := &fakePanelAuthService{err: domain.ErrAuthentication}
	ctrl := NewPanelController(discardLogger(), svc)
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()

	ctrl.Login(rr, req)

	assert.True(t, svc.called)
	assert.Equal(t, "", svc.lastPass)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
