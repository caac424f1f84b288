package middleware

import (
	"context"
	"net/http"
	"strings"

	"hospital-ipd-engine/pkg/jwt"
	"hospital-ipd-engine/pkg/response"
)

type contextKey string

const (
	DoctorIDKey  contextKey = "doctor_id"
	UserEmailKey contextKey = "user_email"
	TokenIDKey   contextKey = "token_id"
)

// AuthMiddleware verifies the bearer token issued by the hospital SSO and
// lifts out the acting doctor identity. Handlers pass that id explicitly
// into the engine; nothing below the delivery layer reads it ambiently.
type AuthMiddleware struct {
	jwtService *jwt.JWTService
}

func NewAuthMiddleware(jwtService *jwt.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), DoctorIDKey, claims.DoctorID)
		ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetDoctorIDFromContext extracts the acting doctor id from context
func GetDoctorIDFromContext(ctx context.Context) (int, bool) {
	doctorID, ok := ctx.Value(DoctorIDKey).(int)
	return doctorID, ok && doctorID > 0
}

// GetUserEmailFromContext extracts the acting user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}
