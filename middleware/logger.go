package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-admin/utils"
)

// Logger stores the request start marker for response_time and prints one line per request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Set(utils.StartTimeKey, start)
		c.Next()
		latency := time.Since(start)
		log.Printf("%s %s %s %d %s", c.Request.Method, c.Request.URL.Path, c.ClientIP(), c.Writer.Status(), latency)
	}
}

// Recovery converts panics into the 500 error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("❌ PANIC %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		utils.RespondError(c, utils.Response{
			Message: "Internal server error",
			Errors:  []string{"INTERNAL_ERROR"},
		})
	})
}
