package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/liveem/livem-core/internal/core"
	v1 "github.com/liveem/livem-core/internal/logic/v1"
	"github.com/liveem/livem-core/internal/response"
	"github.com/liveem/livem-core/pkg/errors"
	"github.com/liveem/livem-core/pkg/i18n"
)

func Cors(c *gin.Context) {
	method := c.Request.Method
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, UPDATE")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Access-Control-Allow-Origin, Access-Control-Allow-Headers, Cache-Control, Content-Language, Content-Type")
		c.Header("Access-Control-Allow-Credentials", "true")
	}
	if method == "OPTIONS" {
		c.AbortWithStatus(http.StatusNoContent)
	}
	c.Next()
}

// RequireSignIn guards routes that only make sense once a profile exists.
func RequireSignIn(core *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		signedIn, err := v1.NewSessionLogic(c, core).IsSignedIn()
		if err != nil {
			response.APIError(c, err)
			return
		}
		if !signedIn {
			response.APIError(c, errors.New("middleware.RequireSignIn", i18n.ERROR_NOT_SIGNED_IN, nil).Code(http.StatusUnauthorized))
			return
		}
		c.Next()
	}
}
