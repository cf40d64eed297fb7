// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"beanwatch/config"
	"beanwatch/internal/domain/entity"
	"beanwatch/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Every token carries a jti; the matching session row is what makes it revocable.
type jwtService struct {
	secret   string
	tokenTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	tokenTTL := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		tokenTTL = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret:   cfg.SecretKey.Access,
		tokenTTL: tokenTTL,
	}, nil
}

// GenerateToken creates a new signed access token for a given user and role.
func (s *jwtService) GenerateToken(userID uuid.UUID, role entity.Role) (string, uuid.UUID, error) {
	tokenID := uuid.New()
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":  userID.String(),            // Subject (who the token is for)
		"role": role.String(),              // Single role for stateless authorization
		"jti":  tokenID.String(),           // Token ID, matches the session row
		"iat":  now.Unix(),                 // Issued At
		"exp":  now.Add(s.tokenTTL).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", uuid.Nil, errors.Wrap(err, "failed to sign token")
	}

	return signed, tokenID, nil
}

// ValidateToken checks the signature and expiry of a token string and
// returns the parsed claims. Storage is not consulted here.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	return parseClaims(mapClaims)
}

// GetTokenDuration returns the configured access-token lifetime.
func (s *jwtService) GetTokenDuration() time.Duration {
	return s.tokenTTL
}

func parseClaims(mapClaims jwt.MapClaims) (*service.Claims, error) {
	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, errors.New("sub claim missing")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "invalid sub claim")
	}

	jti, ok := mapClaims["jti"].(string)
	if !ok {
		return nil, errors.New("jti claim missing")
	}
	tokenID, err := uuid.Parse(jti)
	if err != nil {
		return nil, errors.Wrap(err, "invalid jti claim")
	}

	roleClaim, ok := mapClaims["role"].(string)
	if !ok {
		return nil, errors.New("role claim missing")
	}
	role, ok := entity.ParseRole(roleClaim)
	if !ok {
		return nil, errors.Errorf("unknown role claim %q", roleClaim)
	}

	return &service.Claims{
		UserID:  userID,
		Role:    role,
		TokenID: tokenID,
	}, nil
}
