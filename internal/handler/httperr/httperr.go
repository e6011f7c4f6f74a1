package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// AbortWithError answers with the public message and keeps the original
// error on the context for logging and monitoring.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	resp := Response{Status: status, Error: msg}

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
