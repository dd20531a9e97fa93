package apperror

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zykorwx/dapp/internal/dto"
	"github.com/zykorwx/dapp/pkg/logger"
	appmetrics "github.com/zykorwx/dapp/prometheus"
	"go.uber.org/zap"
)

// Normalize maps any error to the transport status and envelope sent to the
// client. Domain errors keep their own status (401 for authentication, 200
// otherwise), framework HTTP errors keep theirs with rc = -status, and
// everything else is reported as Uncaught with HTTP 200.
func Normalize(err error) (int, dto.Envelope) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status, dto.Envelope{RC: appErr.RC, Msg: appErr.Msg}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok || msg == "" {
			msg = http.StatusText(httpErr.Code)
		}
		return httpErr.Code, dto.Envelope{RC: -httpErr.Code, Msg: msg}
	}

	return http.StatusOK, dto.Envelope{RC: Uncaught, Msg: err.Error()}
}

// HTTPErrorHandler renders every error returned by handlers and middleware
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, envelope := Normalize(err)

	log := logger.FromEcho(c).With(
		zap.Int("rc", envelope.RC),
		zap.String("path", c.Request().URL.Path),
	)
	if envelope.RC == Uncaught {
		log.Error("Unhandled error", zap.Error(err))
	} else {
		log.Warn("Request rejected", zap.String("msg", envelope.Msg))
	}
	appmetrics.RecordError(envelope.RC)

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, envelope)
	}
	if writeErr != nil {
		log.Error("Failed to write error response", zap.Error(writeErr))
	}
}
