package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"eventrsvp/internal/domain"
)

type plainVerifier struct {
	secret []byte
}

// NewPlainVerifier returns a PassphraseVerifier that accepts exactly secret.
// The comparison runs in constant time.
func NewPlainVerifier(secret string) domain.PassphraseVerifier {
	return &plainVerifier{secret: []byte(secret)}
}

func (v *plainVerifier) Verify(passphrase string) bool {
	return subtle.ConstantTimeCompare([]byte(passphrase), v.secret) == 1
}

type bcryptVerifier struct {
	hash []byte
}

// NewBcryptVerifier returns a PassphraseVerifier for a bcrypt hash of the panel secret.
// It fails when hash is not a valid bcrypt hash.
func NewBcryptVerifier(hash string) (domain.PassphraseVerifier, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, err
	}
	return &bcryptVerifier{hash: []byte(hash)}, nil
}

func (v *bcryptVerifier) Verify(passphrase string) bool {
	return bcrypt.CompareHashAndPassword(v.hash, []byte(passphrase)) == nil
}

// NewVerifier picks a verifier from the configured secrets: the plaintext secret
// wins when both are set. It returns nil, nil when neither is configured.
func NewVerifier(plain, bcryptHash string) (domain.PassphraseVerifier, error) {
	switch {
	case plain != "":
		return NewPlainVerifier(plain), nil
	case bcryptHash != "":
		return NewBcryptVerifier(bcryptHash)
	default:
		return nil, nil
	}
}
