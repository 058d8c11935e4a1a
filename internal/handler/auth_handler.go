package handler

import (
	"errors"
	"net/http"

	"shop-service/internal/schema"
	"shop-service/internal/service"
	"shop-service/pkg/jwtutil"
	"shop-service/pkg/logger"
	"shop-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Home returns the static landing message
func Home(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Shop Service APIs (Backend)"})
}

// HealthCheck returns service health status
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// MetricsHandler exposes the Prometheus metrics endpoint
func MetricsHandler(c echo.Context) error {
	handler := prometheus.GetPrometheusHandler()
	handler.ServeHTTP(c.Response(), c.Request())
	return nil
}

// SignUp handles new account registration
func SignUp(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.SignupCounter.Inc()

	var in schema.SignUpIn
	if err := c.Bind(&in); err != nil {
		log.Error("Failed to parse signup request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request"})
	}

	if errs := in.Validate(); errs != nil {
		log.Warn("Signup validation failed", zap.Any("errors", errs))
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": errs.Message()})
	}

	detail, err := service.SignUp(in)
	if err != nil {
		return domainError(c, err)
	}

	log.Info("User registered", zap.String("email", in.Email))
	return c.JSON(http.StatusOK, echo.Map{"detail": detail})
}

// Login handles credential verification and token issuance
func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	var in schema.LoginIn
	if err := c.Bind(&in); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request"})
	}

	if errs := in.Validate(); errs != nil {
		log.Warn("Login validation failed", zap.Any("errors", errs))
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": errs.Message()})
	}

	user, err := service.Login(in)
	if err != nil {
		return domainError(c, err)
	}

	token, err := jwtutil.GenerateToken(user.Email, user.ID, user.IsStaff)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "Token error"})
	}

	prometheus.IncreaseActiveTokens()
	log.Info("User logged in", zap.String("email", user.Email), zap.Uint("user_id", user.ID))

	return c.JSON(http.StatusOK, echo.Map{
		"detail":       "Login Successful",
		"data":         schema.NewUserOut(user),
		"access_token": token,
	})
}

// domainError maps service errors onto the single client error shape.
func domainError(c echo.Context, err error) error {
	log := logger.FromContext(c)

	var invalid *service.InvalidRequestError
	if errors.As(err, &invalid) {
		log.Warn("Invalid request", zap.String("detail", invalid.Detail))
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": invalid.Detail})
	}

	var missing *service.NotFoundError
	if errors.As(err, &missing) {
		log.Warn("Not found", zap.String("detail", missing.Detail))
		return c.JSON(http.StatusNotFound, echo.Map{"detail": missing.Detail})
	}

	log.Error("Unexpected service error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "Internal server error"})
}
