// Package auth verifies signed bearer tokens against the bank's RSA public key.
package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"

	"ledgerwriter/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthenticated covers every verification failure: bad signature,
// malformed token, wrong algorithm, or a missing acct claim. Callers must
// treat all of these uniformly as "not authorized".
var ErrUnauthenticated = errors.New("token verification failed")

// Verifier validates bearer tokens. The public key is loaded once at startup
// and never reloaded; the struct is safe for concurrent use.
type Verifier struct {
	key *rsa.PublicKey
}

// NewVerifier creates a Verifier from an already parsed public key.
func NewVerifier(key *rsa.PublicKey) *Verifier {
	return &Verifier{key: key}
}

// NewVerifierFromFile loads a PEM-encoded RSA public key from path.
func NewVerifierFromFile(path string) (*Verifier, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read public key %s: %w", path, err)
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key %s: %w", path, err)
	}
	return &Verifier{key: key}, nil
}

// Verify checks the token's RS256 signature and returns its claims. The acct
// claim must be present and non-empty.
func (v *Verifier) Verify(tokenStr string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &models.TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrUnauthenticated
	}
	if claims.AccountNum == "" {
		return nil, fmt.Errorf("%w: missing acct claim", ErrUnauthenticated)
	}
	return claims, nil
}
