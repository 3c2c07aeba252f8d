package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorResponse is the API error body. Every failure surfaces to the
// caller as a single detail message.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ErrorHandler maps errors onto HTTP responses
type ErrorHandler struct {
	logger *zap.Logger
	debug  bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *zap.Logger, debug bool) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
		debug:  debug,
	}
}

// Handle processes an error and sends an HTTP response
func (h *ErrorHandler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	status := http.StatusInternalServerError
	detail := "internal server error"

	if appErr := GetAppError(err); appErr != nil {
		if appErr.HTTPStatus != 0 {
			status = appErr.HTTPStatus
		}
		detail = appErr.Message

		if status >= http.StatusInternalServerError {
			fields := []zap.Field{
				zap.String("type", string(appErr.Type)),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			}
			if h.debug && appErr.StackTrace != "" {
				fields = append(fields, zap.String("stack", appErr.StackTrace))
			}
			h.logger.Error("request failed", fields...)
		}
	} else {
		h.logger.Error("unhandled error",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		if h.debug {
			detail = err.Error()
		}
	}

	WriteError(w, status, detail)
}

// WriteError writes a JSON error body with the given status and detail
func WriteError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Detail: detail})
}
