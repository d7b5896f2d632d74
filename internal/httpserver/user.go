package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/ecommerce_api/internal/logging"
	"github.com/mkravets/ecommerce_api/internal/mykafka"
	"github.com/mkravets/ecommerce_api/internal/service"
	"github.com/mkravets/ecommerce_api/internal/transport"
)

type UserHTTP struct {
	Svc      *service.UserService
	Producer *mykafka.Producer
}

func (h *UserHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_users")

	users, err := h.Svc.ListUsers(ctx)
	if err != nil {
		return mapServiceError(l, "get_users", err)
	}

	return c.JSON(http.StatusOK, transport.ToUserResponses(users))
}

func (h *UserHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_user")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.Svc.GetUser(ctx, id)
	if err != nil {
		return mapServiceError(l, "get_user", err)
	}

	return c.JSON(http.StatusOK, transport.ToUserResponse(user))
}

func (h *UserHTTP) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create_user")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_user_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.CreateUser(ctx, req)
	if err != nil {
		return mapServiceError(l, "create_user", err)
	}

	publish(c, h.Producer, "user_events", map[string]any{
		"type":   "user_created",
		"userID": user.ID,
		"email":  user.Email,
	})

	l.Info("create_user_success", "userID", user.ID)
	return c.JSON(http.StatusCreated, transport.ToUserResponse(user))
}

func (h *UserHTTP) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update_user")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_user_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.UpdateUser(ctx, id, req)
	if err != nil {
		return mapServiceError(l, "update_user", err)
	}

	publish(c, h.Producer, "user_events", map[string]any{
		"type":   "user_updated",
		"userID": user.ID,
		"email":  user.Email,
	})

	l.Info("update_user_success", "userID", user.ID)
	return c.JSON(http.StatusOK, transport.ToUserResponse(user))
}

func (h *UserHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete_user")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteUser(ctx, id); err != nil {
		return mapServiceError(l, "delete_user", err)
	}

	publish(c, h.Producer, "user_events", map[string]any{
		"type":   "user_deleted",
		"userID": id,
	})

	l.Info("delete_user_success", "userID", id)
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("successfully deleted user %d", id),
	})
}
