package jwt

import (
	"errors"
	"time"

	"hospital-ipd-engine/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims identify the staff member acting through the engine. Tokens are
// issued by the hospital SSO; this service only verifies them and lifts out
// the acting doctor id that gets stamped onto admissions.
type Claims struct {
	DoctorID int    `json:"doctor_id"`
	Email    string `json:"email"`
	TokenID  string `json:"token_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

// GenerateAccessToken mints a token for the given staff identity. Used by
// operational tooling and tests; production tokens come from the SSO with
// the same claim shape.
func (s *JWTService) GenerateAccessToken(doctorID int, email string) (string, string, error) {
	tokenID := uuid.New().String()
	claims := Claims{
		DoctorID: doctorID,
		Email:    email,
		TokenID:  tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.AccessExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.DoctorID <= 0 {
		return nil, errors.New("token carries no staff identity")
	}

	return claims, nil
}
