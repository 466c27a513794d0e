package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	allowed := []string{"http://localhost:8081", " https://jantar.example.com/ "}

	tests := []struct {
		name        string
		method      string
		origin      string
		wantStatus  int
		wantAllow   string
		wantReached bool
	}{
		{"preflight allowed", http.MethodOptions, "http://localhost:8081", http.StatusNoContent, "http://localhost:8081", false},
		{"preflight normalized origin", http.MethodOptions, "https://jantar.example.com", http.StatusNoContent, "https://jantar.example.com", false},
		{"preflight other origin", http.MethodOptions, "http://evil.test", http.StatusNoContent, "", false},
		{"simple allowed", http.MethodGet, "http://localhost:8081", http.StatusOK, "http://localhost:8081", true},
		{"simple other origin", http.MethodPost, "http://evil.test", http.StatusOK, "", true},
		{"no origin", http.MethodHead, "", http.StatusOK, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(tt.method, "/rsvp", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()

			CORS(allowed, next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantReached, reached)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantAllow != "" {
				assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
			}
			if tt.method == http.MethodOptions && tt.wantAllow != "" {
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "HEAD")
			}
		})
	}
}
