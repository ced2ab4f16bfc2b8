package api

import "github.com/gin-gonic/gin"

// AbortWithError records err on the context for the access log and writes it as an APIError.
func AbortWithError(ctx *gin.Context, status int, code string, err error) {
	ctx.Abort()
	_ = ctx.Error(err)
	ctx.PureJSON(status, APIError{
		Code:    code,
		Message: err.Error(),
	})
}
