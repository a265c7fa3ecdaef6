package middleware

import (
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"

	"hotel-admin/utils"
)

const UserIDKey = "user_id"

// SessionVerifier checks identity-provider session tokens signed with RS256.
type SessionVerifier struct {
	key *rsa.PublicKey
}

// NewSessionVerifier parses a PEM encoded RSA public key. Literal "\n"
// sequences are accepted so the key fits in a single env line.
func NewSessionVerifier(pemKey string) (*SessionVerifier, error) {
	pemKey = strings.ReplaceAll(strings.TrimSpace(pemKey), `\n`, "\n")
	key, err := jwtlib.ParseRSAPublicKeyFromPEM([]byte(pemKey))
	if err != nil {
		return nil, fmt.Errorf("parse session public key: %w", err)
	}
	return &SessionVerifier{key: key}, nil
}

// Subject validates token and returns its sub claim.
func (v *SessionVerifier) Subject(token string) (string, error) {
	claims := &jwtlib.RegisteredClaims{}
	_, err := jwtlib.ParseWithClaims(token, claims, func(t *jwtlib.Token) (any, error) {
		return v.key, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodRS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithLeeway(5*time.Second),
	)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return claims.Subject, nil
}

// RequireSession rejects requests without a valid bearer session token.
// A nil verifier lets every request through.
func RequireSession(v *SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v == nil {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			unauthorized(c, "Authentication required")
			return
		}

		sub, err := v.Subject(strings.TrimSpace(token))
		if err != nil {
			unauthorized(c, "Invalid or expired session")
			return
		}

		c.Set(UserIDKey, sub)
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	utils.RespondError(c, utils.Response{
		Code:    http.StatusUnauthorized,
		Message: message,
		Errors:  []string{"UNAUTHORIZED"},
	})
}
