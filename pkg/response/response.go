package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minhasfinancas/api/internal/domain/errs"
)

type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
	})
}

func Error[T any](ctx *gin.Context, status int, message string, err interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.JSON(status, APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     err,
	})
}

// DomainError maps a service error onto the HTTP contract: business-rule,
// authentication and not-found failures become 400 with the message body,
// anything else is a 500 with the message hidden.
func DomainError(ctx *gin.Context, err error) {
	if kind, ok := errs.KindOf(err); ok && kind != errs.KindPersistence {
		Error[any](ctx, http.StatusBadRequest, err.Error(), nil)
		return
	}
	Error[any](ctx, http.StatusInternalServerError, "internal server error", nil)
}
