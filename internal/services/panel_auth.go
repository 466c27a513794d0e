package services

import (
	"context"

	"eventrsvp/internal/domain"
)

type panelAuthService struct {
	verifier domain.PassphraseVerifier
}

// NewPanelAuthService creates a PanelAuthService. A nil verifier means no panel
// secret was configured and every attempt fails with domain.ErrConfiguration.
func NewPanelAuthService(verifier domain.PassphraseVerifier) domain.PanelAuthService {
	return &panelAuthService{verifier: verifier}
}

func (s *panelAuthService) Authenticate(_ context.Context, passphrase string) error {
	if s.verifier == nil {
		return domain.ErrConfiguration
	}
	if !s.verifier.Verify(passphrase) {
		return domain.ErrAuthentication
	}
	return nil
}
