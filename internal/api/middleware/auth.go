package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/aquasense/water-quality-api/internal/core/domain"
)

// SessionCookieName is the HttpOnly cookie the login handler sets. Browser
// clients authenticate with it; API clients send a bearer header instead.
const SessionCookieName = "wq_session"

// Auth validates the session token and injects the caller's identity into
// context. A bearer Authorization header takes precedence over the cookie.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := extractToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			userID, role, err := parseToken(token, jwtSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user_id", userID)
			c.Set("role", role)

			return next(c)
		}
	}
}

// OptionalAuth injects the caller's identity when a valid token is present and
// passes the request through unauthenticated otherwise. Used by the session
// check endpoint, which reports rather than enforces authentication.
func OptionalAuth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token, ok := extractToken(c); ok {
				if userID, role, err := parseToken(token, jwtSecret); err == nil {
					c.Set("user_id", userID)
					c.Set("role", role)
				}
			}
			return next(c)
		}
	}
}

func extractToken(c echo.Context) (string, bool) {
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1], true
		}
		return "", false
	}

	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	return "", false
}

func parseToken(token, jwtSecret string) (int64, domain.Role, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return 0, "", jwt.ErrTokenSignatureInvalid
	}

	sub, _ := claims["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, "", jwt.ErrTokenInvalidSubject
	}

	roleClaim, _ := claims["role"].(string)
	role, _ := domain.ParseRole(roleClaim)

	return userID, role, nil
}
