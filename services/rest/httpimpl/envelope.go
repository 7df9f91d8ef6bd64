package httpimpl

import (
	"net/http"
	"strings"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/labstack/echo/v4"
)

// successResponse is the body of every successful response.
type successResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// errorResponse is the body of every failed response. It never carries data.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func sendSuccess(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, &successResponse{
		Success: true,
		Data:    data,
	})
}

// sendError writes the error envelope. The status code only mirrors the error
// class, clients are expected to look at the success flag.
//
// HTTP Status Code Handling:
//   - 400 for input that failed validation, or that the backend rejected as invalid
//   - 404 when the backend reports the item as not found
//   - 503 when the backend cannot be reached
//   - 500 otherwise
//
// Nothing is written once the client has gone away.
func sendError(c echo.Context, err error) error {
	if c.Request().Context().Err() != nil {
		return nil
	}

	status := errorStatus(err)

	return c.JSON(status, &errorResponse{
		Success: false,
		Error:   errorMessage(err),
	})
}

func errorStatus(err error) int {
	switch {
	case errors.IsValidationError(err), errors.Is(err, errors.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.IsUnavailableError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage joins the messages along an error chain, outermost first, without
// the code annotations of (*errors.Error).Error.
func errorMessage(err error) string {
	var tErr *errors.Error
	if !errors.As(err, &tErr) {
		return err.Error()
	}

	messages := make([]string, 0, 2)

	var curr error = tErr

	for curr != nil {
		e, ok := curr.(*errors.Error)
		if !ok {
			messages = append(messages, curr.Error())
			break
		}

		if msg := e.Message(); msg != "" {
			messages = append(messages, msg)
		}

		curr = e.WrappedErr()
	}

	return strings.Join(messages, ": ")
}
