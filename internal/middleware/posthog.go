package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/l10n_addons/internal/analytics"
	"github.com/gin-gonic/gin"
)

// untrackedPrefixes are operational endpoints kept out of product analytics.
var untrackedPrefixes = []string{"/health", "/metrics", "/swagger"}

// PosthogMiddleware tracks successful authenticated API calls, one event per route template.
// Machine clients are tracked under their "client:<name>" id.
func PosthogMiddleware(tracker analytics.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if tracker == nil || isUntracked(c.Request.URL.Path) {
			return
		}
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		event := eventName(c.FullPath())
		if event == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if method, exists := c.Get(authMethodKey); exists {
			props["auth_method"] = method
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}

		tracker.Enqueue(userID, event, props)
	}
}

func isUntracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// eventName turns "/api/v1/documents/:id/retry" into "api_v1_documents_:id_retry".
func eventName(route string) string {
	return strings.ReplaceAll(strings.TrimPrefix(route, "/"), "/", "_")
}
