package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Spok95/online-catalogue/internal/catalogue"
	"github.com/Spok95/online-catalogue/internal/db"
	"github.com/Spok95/online-catalogue/internal/logging"
	"github.com/Spok95/online-catalogue/internal/observability"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeError maps a repository error onto a status code. Only unexpected
// failures are reported to Sentry.
func (h *Handler) writeError(c *gin.Context, err error) {
	var nf *catalogue.NotFoundError
	var ve validator.ValidationErrors
	switch {
	case errors.As(err, &nf):
		c.String(http.StatusNotFound, nf.Error())
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fieldErrors(ve)})
	case db.IsForeignKeyViolation(err), db.IsUniqueViolation(err):
		c.JSON(http.StatusConflict, errorResponse{Error: "conflicts with existing data"})
	case db.IsConstraintViolation(err):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "value out of range"})
	default:
		ctx := c.Request.Context()
		logging.FromContext(ctx, h.log).Error("request failed", zap.Error(err))
		observability.CaptureErrCtx(ctx, err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// badRequest answers malformed input that never reached the repository.
func badRequest(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fieldErrors(ve)})
		return
	}
	c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func fieldErrors(ve validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		if fe.Param() != "" {
			out[fe.Field()] = fe.Tag() + "=" + fe.Param()
			continue
		}
		out[fe.Field()] = fe.Tag()
	}
	return out
}
