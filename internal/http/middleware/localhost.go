package middleware

import (
	"errors"
	"net"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yyoonchul/murmur-blog/internal/http/response"
	"github.com/yyoonchul/murmur-blog/internal/platform/apierr"
)

var errRemoteSettings = errors.New("settings are only available from this machine")

// LocalOnly rejects requests from non-loopback peers when enabled. The peer
// address comes from the connection, never from forwarding headers.
func LocalOnly(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled || isLoopback(c.Request.RemoteAddr) {
			c.Next()
			return
		}
		response.RespondServiceError(c, apierr.Forbidden(errRemoteSettings), apierr.CodeForbidden)
		c.Abort()
	}
}

func isLoopback(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	host = strings.TrimPrefix(host, "::ffff:")
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
