package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hbomb79/Videomania/pkg/logger"
	"github.com/labstack/echo/v4"
)

var log = logger.Get("API")

type (
	APIError struct {
		// Human readable error display message
		Message string

		// A machine readable and stable identifier for the error case being represented
		Code string

		// Used to alter the HTTP response status in accordance with the error
		Status int

		// Additional message for internal logging only. Will not be included in the message
		// sent to the user.
		InternalMessage string
	}

	// ErrorResponse is the body sent to the client for every failed request.
	ErrorResponse struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Code    string `json:"code"`
	}
)

// Error satisifies the Go error interface and simply exposes the
// message contained by this APIError.
func (err APIError) Error() string {
	return fmt.Sprintf("api error: %s", err.Message)
}

func BadRequest(message string) APIError {
	return APIError{Status: http.StatusBadRequest, Code: "BAD_REQUEST", Message: message}
}

func NotFound(message string) APIError {
	return APIError{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: message}
}

// Internal constructs a 500 APIError. When a cause is given its message is
// appended to the response message ("<message>: <cause>") and logged by the
// error handler.
func Internal(message string, cause error) APIError {
	apiErr := APIError{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: message}
	if cause != nil {
		apiErr.Message = fmt.Sprintf("%s: %s", message, cause.Error())
		apiErr.InternalMessage = cause.Error()
	}

	return apiErr
}

// GetHTTPErrorHandler returns an echo HTTP error handler
// which understands how to interpret APIError. Echo's own HTTPErrors
// (e.g. unmatched routes, body limit exceeded) are rendered in the same
// shape. Anything else is reported as an opaque 500.
func GetHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		apiErr := toAPIError(err)
		if apiErr.Status == 0 {
			apiErr.Status = http.StatusInternalServerError
		}
		if len(apiErr.Message) == 0 {
			apiErr.Message = http.StatusText(apiErr.Status)
		}
		if len(apiErr.Code) == 0 {
			apiErr.Code = http.StatusText(apiErr.Status)
		}
		if len(apiErr.InternalMessage) > 0 {
			log.Errorf("%s request to %s failed, internal error: %s\n", ctx.Request().Method, ctx.Request().RequestURI, apiErr.InternalMessage)
		}

		response := ErrorResponse{Success: false, Error: apiErr.Message, Code: apiErr.Code}
		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(apiErr.Status)
		} else {
			writeErr = ctx.JSON(apiErr.Status, response)
		}
		if writeErr != nil {
			log.Warnf("Failed to write error response: %v\n", writeErr)
		}
	}
}

func toAPIError(err error) APIError {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}

		internal := ""
		if httpErr.Internal != nil {
			internal = httpErr.Internal.Error()
		}
		return APIError{Status: httpErr.Code, Message: message, InternalMessage: internal}
	}

	log.Warnf("Request failed with an error which is not an APIError: %v\n", err)
	return APIError{Status: http.StatusInternalServerError, InternalMessage: err.Error()}
}
