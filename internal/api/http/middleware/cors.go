package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	corsMethods = []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"}
	corsHeaders = []string{"Content-Type", "Authorization"}
)

// CORS applies the blanket cross-origin policy to every response and
// answers preflight requests. gin-contrib/cors only decorates requests that
// carry an Origin header, so the static headers are set up front.
func CORS() gin.HandlerFunc {
	preflight := cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    corsMethods,
		AllowHeaders:    corsHeaders,
	})
	methods := strings.Join(corsMethods, ",")
	headers := strings.Join(corsHeaders, ",")

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", methods)
		h.Set("Access-Control-Allow-Headers", headers)
		preflight(c)
	}
}
