package middleware

import (
	"net/http"
	"strings"

	"mathsolver-backend/pkg/auth"
	pkgerrors "mathsolver-backend/pkg/errors"
)

// Authenticate creates an authentication middleware backed by the given
// JWT validator. Requests are rate limited per client IP before token
// validation and per user after it.
func Authenticate(validator *auth.JWTValidator) func(next http.Handler) http.Handler {
	ipLimiter := auth.NewIPRateLimiter(100)     // 100 requests per minute per IP
	userLimiter := auth.NewUserRateLimiter(200) // 200 requests per minute per user

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := getClientIP(r)

			allowed, _ := ipLimiter.Allow(r.Context(), clientIP)
			if !allowed {
				pkgerrors.WriteError(w, http.StatusTooManyRequests, "Rate limit exceeded")
				return
			}

			token, err := extractBearerToken(r)
			if err == auth.ErrMissingToken {
				pkgerrors.WriteError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			if err != nil {
				pkgerrors.WriteError(w, http.StatusUnauthorized, "Invalid authorization header format")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				switch err {
				case auth.ErrExpiredToken:
					pkgerrors.WriteError(w, http.StatusUnauthorized, "Token has expired")
				case auth.ErrInvalidSignature:
					pkgerrors.WriteError(w, http.StatusUnauthorized, "Invalid token signature")
				default:
					pkgerrors.WriteError(w, http.StatusUnauthorized, "Invalid authentication credentials")
				}
				return
			}

			allowed, _ = userLimiter.Allow(r.Context(), claims.UserID)
			if !allowed {
				pkgerrors.WriteError(w, http.StatusTooManyRequests, "User rate limit exceeded")
				return
			}

			userCtx := &auth.UserContext{
				UserID:        claims.UserID,
				Email:         claims.Email,
				Name:          claims.Name,
				EmailVerified: claims.EmailVerified,
			}

			next.ServeHTTP(w, r.WithContext(auth.SetUserInContext(r.Context(), userCtx)))
		})
	}
}

// extractBearerToken pulls the token out of the Authorization header
func extractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		authHeader = r.Header.Get("authorization")
	}
	if authHeader == "" {
		return "", auth.ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}

// getClientIP prefers proxy headers over the socket address
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	if idx := strings.LastIndex(r.RemoteAddr, ":"); idx != -1 {
		return r.RemoteAddr[:idx]
	}
	return r.RemoteAddr
}
