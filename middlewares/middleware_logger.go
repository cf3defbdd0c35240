package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		entry := utils.InfoLogger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"client_ip":  c.ClientIP(),
			"latency":    latency.String(),
		})
		if status >= 500 {
			entry.Warnf("%s | %3d | %s", c.Request.Method, status, path)
			return
		}
		entry.Infof("%s | %3d | %s", c.Request.Method, status, path)
	}
}
