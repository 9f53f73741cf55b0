package response

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/liveem/livem-core/pkg/errors"
	"github.com/liveem/livem-core/pkg/i18n"
)

type Meta struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Body struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data"`
}

func APISuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Body{
		Meta: Meta{
			Code:    0,
			Message: "ok",
		},
		Data: data,
	})
}

func APIError(c *gin.Context, err error) {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		e = errors.New("response.APIError", i18n.ERROR_INTERNAL, err)
	}

	if e.Status() >= http.StatusInternalServerError {
		slog.Error("request failed", slog.String("namespace", e.Namespace()), slog.String("error", e.Error()))
	}

	c.AbortWithStatusJSON(e.Status(), Body{
		Meta: Meta{
			Code: e.Status(),
			// message keys are resolved client side
			Message: e.Message(),
		},
	})
}
