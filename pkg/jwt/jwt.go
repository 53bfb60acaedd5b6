package jwt

import (
	"fmt"
	"time"

	"dealer-report-srv/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CreateToken signs payload, filling the registered claims the manager owns.
func (m *Manager) CreateToken(payload scope.Payload) (string, error) {
	now := time.Now()
	payload.Issuer = m.issuer
	payload.Audience = m.audience
	payload.IssuedAt = jwt.NewNumericDate(now)
	payload.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	if payload.Subject == "" {
		payload.Subject = payload.UserID
	}
	if payload.ID == "" {
		payload.ID = uuid.New().String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify implements scope.Manager: it checks the HS256 signature, expiry, issuer and audience.
func (m *Manager) Verify(tokenString string) (scope.Payload, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	if len(m.audience) > 0 {
		opts = append(opts, jwt.WithAudience(m.audience[0]))
	}

	var payload scope.Payload
	token, err := jwt.ParseWithClaims(tokenString, &payload, func(token *jwt.Token) (any, error) {
		return m.secretKey, nil
	}, opts...)
	if err != nil {
		return scope.Payload{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return scope.Payload{}, fmt.Errorf("invalid token")
	}

	return payload, nil
}
