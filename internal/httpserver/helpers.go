package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mkravets/ecommerce_api/internal/logging"
	"github.com/mkravets/ecommerce_api/internal/mykafka"
	"github.com/mkravets/ecommerce_api/internal/service"
)

func parseID(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s: %s", name, c.Param(name)))
	}
	return uint(v), nil
}

// mapServiceError translates service sentinel errors into HTTP errors and
// logs them at the matching level.
func mapServiceError(l *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		l.Warn(op+"_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrNotAssociated):
		l.Warn(op+"_error", "status", 404, "error", err)
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		l.Warn(op+"_error", "status", 409, "error", err)
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		l.Error(op+"_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

func joinIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ", ")
}

// publish sends a domain event after a successful mutation. Failures are
// logged and never fail the request.
func publish(c echo.Context, p *mykafka.Producer, topic string, event map[string]any) {
	event["event_id"] = uuid.NewString()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := p.PublishEvent(ctx, topic, fmt.Sprint(event["type"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("kafka_publish_error", "topic", topic, "error", err)
	}
}
