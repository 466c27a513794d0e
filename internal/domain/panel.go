package domain

import "context"

// PassphraseVerifier checks a submitted passphrase against the configured panel secret.
// Implementations may compare plaintext or a stored hash.
type PassphraseVerifier interface {
	Verify(passphrase string) bool
}

// PanelAuthService authenticates access to the administrative panel.
type PanelAuthService interface {
	// Authenticate returns nil when the passphrase matches, ErrAuthentication when it does not
	// and ErrConfiguration when no panel secret is configured.
	Authenticate(ctx context.Context, passphrase string) error
}
