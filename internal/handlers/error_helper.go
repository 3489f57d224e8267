package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/washpoint/carwash-api/internal/httperr"
)

// writeError maps business codes to their HTTP status. Anything that is not
// a BusinessError is an unexpected failure: logged server-side, surfaced as
// a generic 500.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "":
		log.Error("unexpected error", zap.String("path", c.FullPath()), zap.Error(err))
		httperr.Internal(c, "internal_error", "something went wrong")
	case "appointment_not_found", "feedback_not_found", "email_not_found",
		"client_not_found", "employee_not_found":
		httperr.NotFound(c, code, code)
	case "forbidden":
		httperr.Forbidden(c, code, code)
	case "invalid_credentials":
		httperr.Unauthorized(c, code, code)
	case "email_already_exists":
		httperr.Conflict(c, code, code)
	default:
		httperr.BadRequest(c, code, code)
	}
}
