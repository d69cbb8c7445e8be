package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const issuer = "tukarbot"

type Claims struct {
	AdminID string `json:"admin_id"`
	jwt.StandardClaims
}

type JWTServiceInterface interface {
	GenerateJWT(adminID string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// JWTService issues and validates admin tokens. Validation also enforces the
// fixed admin allow-list; a valid signature with an unlisted id is rejected.
type JWTService struct {
	secret []byte
	allow  map[string]struct{}
}

func NewJWTService(secret string, adminIDs []string) *JWTService {
	allow := make(map[string]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		allow[id] = struct{}{}
	}
	return &JWTService{secret: []byte(secret), allow: allow}
}

func (s *JWTService) GenerateJWT(adminID string, expirationTime time.Time) (string, error) {
	claims := Claims{
		AdminID: adminID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.AdminID == "" || claims.Issuer != issuer {
		return nil, errors.New("invalid token claims")
	}
	if _, allowed := s.allow[claims.AdminID]; !allowed {
		return nil, errors.New("not an admin")
	}

	return claims, nil
}
