package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the uniform error body. Storage failures keep the legacy
// {"message":"DB error","error":"..."} shape the client expects.
type Err struct {
	StatusCode int `json:"-"`

	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
}

func (e *Err) Error() string {
	return e.Message
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Message:    "invalid request",
		Detail:     err.Error(),
	}
}

func ErrStorage(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    "DB error",
		Detail:     err.Error(),
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("server error",
			zap.Int("status", err.StatusCode),
			zap.String("detail", err.Detail),
		)
	}

	ctx.JSON(err.StatusCode, err)
}
