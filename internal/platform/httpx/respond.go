// Package httpx renders the JSON response envelope shared by every
// endpoint. All failures, regardless of origin, come out as
// {"status": "error", "message": ...} so clients parse one shape.
package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report validation failures under the json field name instead of the
	// Go struct field name, so "UserID" surfaces as "user_id".
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// StatusResponse is the bare success envelope returned by PATCH and
// DELETE.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the uniform error envelope. Message is either a short
// string code or a list of FieldError for validation failures.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message any    `json:"message"`
}

// FieldError describes a single field-level validation problem.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Success writes the bare {"status": "success"} envelope.
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Status: "success"})
}

// Error writes the error envelope with the given status code and message.
func Error(c *gin.Context, code int, message any) {
	c.JSON(code, ErrorResponse{Status: "error", Message: message})
}

// Internal logs err and writes a generic 500 envelope. Used for
// unexpected failures (database down, driver errors) that must not leak
// detail to the client.
func Internal(c *gin.Context, err error) {
	slog.Error("unhandled error", "error", err, "path", c.FullPath())
	Error(c, http.StatusInternalServerError, "internal_error")
}

// BindingError writes a 400 envelope for a request body that failed to
// bind. Validator failures are rendered per field; anything else (for
// example malformed JSON) is rendered as the error text.
func BindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fe.Field(), Reason: reasonForTag(fe)})
		}
		Error(c, http.StatusBadRequest, details)
		return
	}
	Error(c, http.StatusBadRequest, err.Error())
}

// reasonForTag converts a validator tag failure into a short human
// readable reason.
func reasonForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	default:
		return "failed validation on '" + fe.Tag() + "'"
	}
}
