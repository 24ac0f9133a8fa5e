package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/h0pler/whs2nd-secureshoppingmall/internal/logging"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/repo"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/service"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/transport"
)

type AccountHTTP struct {
	Svc *service.AccountService
}

func (h *AccountHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "missing required fields")
		}
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			l.Warn("register_error", "status", 409, "reason", "username already taken")
			return echo.NewHTTPError(http.StatusConflict, "username already taken")
		}
		l.Error("register_error", "status", 500, "reason", "cannot create user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create user")
	}

	return c.JSON(http.StatusCreated, transport.UserResponse{
		Message: "User created successfully!",
		User:    user,
	})
}

func (h *AccountHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, greeting, err := h.Svc.Login(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "missing required fields")
		}
		if errors.Is(err, repo.ErrInvalidCredentials) {
			l.Warn("login_failed", "status", 401, "reason", "credentials do not match")
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid username or password")
		}
		l.Error("login_error", "status", 500, "reason", "cannot look up user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot look up user")
	}

	return c.JSON(http.StatusOK, transport.UserResponse{
		Message: greeting,
		User:    user,
	})
}

func (h *AccountHTTP) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.update_profile")

	var req transport.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_profile_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdateProfile(ctx, req); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "missing required fields")
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("update_profile_error", "status", 404, "reason", "user not found")
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		l.Error("update_profile_error", "status", 500, "reason", "cannot update user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update user")
	}

	return c.JSON(http.StatusOK, transport.MessageResponse{
		Message: "User information updated successfully!",
	})
}
