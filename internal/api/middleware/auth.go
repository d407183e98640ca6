// Package middleware provides HTTP middleware for the driftdns endpoints:
// Basic auth for dyndns2 updates, API key checks and request logging.
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/driftdns/driftdns/internal/api/models"
	"github.com/driftdns/driftdns/internal/dyndns"
	"github.com/driftdns/driftdns/internal/passwd"
)

// RequireBasicAuth enforces HTTP Basic credentials on update endpoints.
// Rejections answer in protocol form: the badauth token as plain text with
// a WWW-Authenticate challenge.
func RequireBasicAuth(username, passwordHash string, stats *dyndns.Stats) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()

		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passOK := passwd.Verify(passwordHash, pass)
		if ok && userOK && passOK {
			c.Next()
			return
		}

		if stats != nil {
			stats.Record(dyndns.StatusBadAuth)
		}
		c.Header("WWW-Authenticate", `Basic realm="driftdns"`)
		c.String(http.StatusUnauthorized, "%s\n", dyndns.StatusBadAuth)
		c.Abort()
	}
}

// RequireAPIKey enforces a simple shared-secret API key.
// Clients must send `X-API-Key: <key>`.
func RequireAPIKey(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader("X-API-Key")
		if expected == "" || subtle.ConstantTimeCompare([]byte(got), []byte(expected)) == 1 {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
	}
}
