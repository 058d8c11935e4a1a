package middleware

import (
	"net/http"
	"strings"

	"shop-service/pkg/jwtutil"
	"shop-service/pkg/logger"
	"shop-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware validates the JWT bearer token and stores the caller's
// identity in the request context.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		// Get the Authorization header
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			prometheus.RecordAuthError("missing_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Authentication credentials were not provided"})
		}

		// Check if it's a Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			prometheus.RecordAuthError("invalid_header")
			return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Invalid authorization format, expected Bearer token"})
		}

		// Validate the token
		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Error("Invalid JWT token", zap.Error(err))
			prometheus.RecordAuthError("invalid_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Invalid or expired token"})
		}

		// Store user info in context for later use
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("is_staff", claims.IsStaff)

		log.Debug("Request authenticated",
			zap.Uint("user_id", claims.UserID),
			zap.String("email", claims.Email))

		return next(c)
	}
}

// StaffOnly rejects authenticated callers that do not carry the staff flag.
// It must run after AuthMiddleware.
func StaffOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		isStaff, ok := c.Get("is_staff").(bool)
		if !ok || !isStaff {
			log.Warn("Non-staff caller denied",
				zap.Uint("user_id", nilSafeUserID(c)))
			prometheus.RecordAuthError("not_staff")
			return c.JSON(http.StatusForbidden, echo.Map{"detail": "You do not have permission to perform this action"})
		}

		return next(c)
	}
}

// UserIDFromContext retrieves the authenticated user's ID from the context.
// Returns 0, false if the request is not authenticated.
func UserIDFromContext(c echo.Context) (uint, bool) {
	userID, ok := c.Get("user_id").(uint)
	return userID, ok
}

func nilSafeUserID(c echo.Context) uint {
	userID, _ := UserIDFromContext(c)
	return userID
}
