package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"eventrsvp/internal/domain"
)

type fakeVerifier struct {
	secret string
}

func (f *fakeVerifier) Verify(passphrase string) bool { return passphrase == f.secret }

func TestPanelAuthService_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		verifier   domain.PassphraseVerifier
		passphrase string
		wantErr    error
	}{
		{"correct passphrase", &fakeVerifier{secret: "jantar"}, "jantar", nil},
		{"wrong passphrase", &fakeVerifier{secret: "jantar"}, "JANTAR", domain.ErrAuthentication},
		{"empty passphrase", &fakeVerifier{secret: "jantar"}, "", domain.ErrAuthentication},
		{"not configured", nil, "jantar", domain.ErrConfiguration},
		{"not configured empty input", nil, "", domain.ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPanelAuthService(tt.verifier)
			err := svc.Authenticate(context.Background(), tt.passphrase)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
