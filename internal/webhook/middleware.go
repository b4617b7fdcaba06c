package webhook

import (
	"bytes"
	"io"

	"github.com/gin-gonic/gin"

	pkgLog "office-assistant/pkg/log"
	pkgResponse "office-assistant/pkg/response"
)

const signatureHeader = "X-Signature-256"

// Middleware guards the channel messaging endpoint: IP allowlist,
// per-source rate limiting and an optional HMAC body signature.
func Middleware(l pkgLog.Logger, config SecurityConfig) gin.HandlerFunc {
	validator := NewSecurityValidator(config)

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := validator.ValidateIPAddress(c.Request); err != nil {
			l.Warnf(ctx, "webhook middleware: %v", err)
			pkgResponse.Forbidden(c)
			c.Abort()
			return
		}

		if config.RateLimitPerMin > 0 {
			if err := validator.CheckRateLimit(extractIP(c.Request)); err != nil {
				l.Warnf(ctx, "webhook middleware: %v", err)
				pkgResponse.Forbidden(c)
				c.Abort()
				return
			}
		}

		if config.Secret != "" {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				l.Errorf(ctx, "webhook middleware: failed to read body: %v", err)
				pkgResponse.Error(c, err, nil)
				c.Abort()
				return
			}
			// Restore the body for downstream handlers.
			c.Request.Body = io.NopCloser(bytes.NewReader(body))

			if err := validator.ValidateSignature(body, c.GetHeader(signatureHeader)); err != nil {
				l.Warnf(ctx, "webhook middleware: %v", err)
				pkgResponse.Unauthorized(c)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
