package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders adds security-related headers to all responses. Frames
// are allowed same-origin so the storefront can embed its own fragments.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "SAMEORIGIN")
		c.Header("X-XSS-Protection", "1; mode=block")

		c.Next()
	}
}
