package api

const (
	CodeNotFound      = "E_NOT_FOUND"      // no route for the path/method
	CodeRateLimited   = "E_RATE_LIMITED"   // rate limit exceeded
	CodeInternalError = "E_INTERNAL_ERROR" // internal server error
)
