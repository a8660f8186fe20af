package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/paperfx/paperfx_app/internal/utils"
)

// untrackedPaths are operational endpoints excluded from analytics.
var untrackedPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// eventNameForRoute derives a capture event name from a route pattern, e.g.
// "/api/v1/rates/:from/:to" -> "api_v1_rates_from_to".
func eventNameForRoute(routePath string) string {
	name := strings.TrimPrefix(routePath, "/")
	name = strings.ReplaceAll(name, "/", "_")
	return strings.ReplaceAll(name, ":", "")
}

// PosthogMiddleware captures one analytics event per successful authenticated
// request, named after the matched route.
func PosthogMiddleware(client *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || !client.IsInitialized() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		eventName := eventNameForRoute(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		for _, param := range c.Params {
			props["param_"+param.Key] = param.Value
		}
		client.Enqueue(strconv.FormatInt(userID, 10), eventName, props)
	}
}

// PosthogEvent sends a custom named event for the authenticated user, tagged
// with the request method and path.
func PosthogEvent(c *gin.Context, client *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if client == nil || !client.IsInitialized() {
		return
	}
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	if properties == nil {
		properties = map[string]any{}
	}
	properties["method"] = c.Request.Method
	properties["path"] = c.Request.URL.Path
	client.Enqueue(strconv.FormatInt(userID, 10), eventName, properties)
}
