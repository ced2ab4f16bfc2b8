package middlewares

import (
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// SecureHeaders sets the standard hardening headers. HSTS is only sent in production,
// where TLS is terminated in front of the service.
func SecureHeaders(production bool) gin.HandlerFunc {
	config := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		IENoOpen:           true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
	}

	if production {
		config.STSSeconds = 315360000
		config.STSIncludeSubdomains = true
	}

	return secure.New(config)
}
