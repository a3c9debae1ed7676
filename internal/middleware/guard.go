package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"anoa.com/nftmarketplace/pkg/session"
	"github.com/gin-gonic/gin"
)

const (
	LoginPath     = "/auth/signin"
	SignupPath    = "/auth/signup"
	DashboardPath = "/dashboard"
)

var protectedPrefixes = []string{
	"/dashboard",
	"/wallet",
	"/transactions",
	"/api/deposit",
}

// IsProtectedPath reports whether path requires a session at the routing layer.
// Everything else is public there; API handlers still apply their own session guard.
func IsProtectedPath(path string) bool {
	for _, prefix := range protectedPrefixes {
		if hasSegmentPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func isAuthPage(path string) bool {
	path = strings.TrimSuffix(path, "/")
	return path == LoginPath || path == SignupPath
}

// hasSegmentPrefix matches prefix itself or prefix followed by "/", so /wallets is not /wallet.
func hasSegmentPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}

// RouteGuard redirects anonymous visitors of protected paths to the login page with a callback,
// and signed in visitors of the login and signup pages to the dashboard.
func RouteGuard(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		protected := IsProtectedPath(path)
		authPage := isAuthPage(path)

		if !protected && !authPage {
			c.Next()
			return
		}

		_, err := sessions.FromRequest(c)
		authenticated := err == nil

		switch {
		case protected && !authenticated:
			c.Redirect(http.StatusFound, LoginPath+"?callbackUrl="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
		case authPage && authenticated:
			c.Redirect(http.StatusFound, DashboardPath)
			c.Abort()
		default:
			c.Next()
		}
	}
}
