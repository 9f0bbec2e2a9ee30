package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/errors"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/source"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID reads the request id set by the RequestID middleware, falling
// back to the incoming header
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// bindAndValidate binds path and query parameters into req and validates it
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload(err)
	}
	if err := c.Validate(req); err != nil {
		return errors.ErrInvalidArgument(err.Error())
	}
	return nil
}

// toAppError maps domain and infrastructure errors onto AppErrors. resourceID
// names the platform or cluster the request was about.
func toAppError(err error, resourceID string) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, entities.ErrDataShape):
		return errors.ErrDataShape(err)
	case stdErrors.Is(err, entities.ErrPlatformNotFound):
		return errors.ErrPlatformNotFound(resourceID)
	case stdErrors.Is(err, entities.ErrClusterNotFound):
		return errors.ErrClusterNotFound(resourceID)
	case stdErrors.Is(err, entities.ErrInvalidPlatform),
		stdErrors.Is(err, entities.ErrInvalidCategory),
		stdErrors.Is(err, entities.ErrInvalidSortKey),
		stdErrors.Is(err, entities.ErrTrendIndex):
		return errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, source.ErrUnavailable):
		return errors.ErrSourceUnavailable("clustering", err)
	default:
		return errors.ErrInternal(err)
	}
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    errors.ErrorCode_HTTP_OK,
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Debug("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			log := logger.Warn
			if appErr.HTTPCode >= http.StatusInternalServerError {
				log = logger.Error
			}
			log("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Stringer("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
			Details: appErr.Details,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// ErrorHandler renders errors that never reached a handler, such as unknown
// routes, in the same envelope HandleError uses
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if stdErrors.As(err, &he) {
			switch {
			case he.Code == http.StatusNotFound:
				err = errors.ErrNotFound("route " + c.Request().URL.Path)
			case he.Code < http.StatusInternalServerError:
				_ = c.JSON(he.Code, errs{
					Code:    errors.ErrorCode_INVALID_ARGUMENT,
					Message: fmt.Sprint(he.Message),
				})
				return
			}
		}

		if hErr := HandleError(logger, c, err); hErr != nil && logger != nil {
			logger.Error("http.response.write_failed", zap.Error(hErr))
		}
	}
}
