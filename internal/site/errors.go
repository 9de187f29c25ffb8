package site

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// HTTPError is an error with the status code it should be answered with.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Message)
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

// ErrorHandler answers page errors. HTTPErrors keep their status and message;
// anything else is logged and answered with a bare 500.
func ErrorHandler(log *zap.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		var httpErr HTTPError
		if errors.As(err, &httpErr) {
			log.Debug("request failed",
				zap.String("path", r.URL.Path),
				zap.Int("status", httpErr.Code),
				zap.Error(err))
			http.Error(w, httpErr.Message, httpErr.Code)
			return
		}
		log.Error("error handling request", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
