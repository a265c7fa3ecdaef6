package utils

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StartTimeKey is the gin context key holding the request start marker.
const StartTimeKey = "request_start"

// Envelope is the uniform body returned by every JSON endpoint.
type Envelope struct {
	Code         int      `json:"code"`
	Message      string   `json:"message"`
	Success      bool     `json:"success"`
	Errors       []string `json:"errors"`
	ResponseTime string   `json:"response_time"`
	Data         any      `json:"data"`
}

// Response describes what a handler wants to send. Zero values fall back to
// the envelope defaults. Start takes precedence over ResponseTime.
type Response struct {
	Code         int
	Message      string
	Errors       []string
	Data         any
	Start        time.Time
	ResponseTime string
}

func BuildEnvelope(r Response) Envelope {
	code := r.Code
	if code == 0 {
		code = http.StatusOK
	}
	message := r.Message
	if message == "" {
		message = "Success"
	}
	return Envelope{
		Code:         code,
		Message:      message,
		Success:      true,
		Errors:       nonNil(r.Errors),
		ResponseTime: responseTime(r),
		Data:         r.Data,
	}
}

// BuildErrorEnvelope forces success=false and defaults to a 500.
func BuildErrorEnvelope(r Response) Envelope {
	code := r.Code
	if code == 0 {
		code = http.StatusInternalServerError
	}
	message := r.Message
	if message == "" {
		message = "Internal server error"
	}
	return Envelope{
		Code:         code,
		Message:      message,
		Success:      false,
		Errors:       nonNil(r.Errors),
		ResponseTime: responseTime(r),
		Data:         r.Data,
	}
}

func Respond(c *gin.Context, r Response) {
	withStart(c, &r)
	env := BuildEnvelope(r)
	c.JSON(env.Code, env)
}

func RespondError(c *gin.Context, r Response) {
	withStart(c, &r)
	env := BuildErrorEnvelope(r)
	c.AbortWithStatusJSON(env.Code, env)
}

// FormatElapsed renders the time since start in milliseconds, e.g. "12.34ms".
func FormatElapsed(start time.Time) string {
	ms := float64(time.Since(start).Microseconds()) / 1000
	return fmt.Sprintf("%.2fms", ms)
}

func withStart(c *gin.Context, r *Response) {
	if !r.Start.IsZero() || r.ResponseTime != "" {
		return
	}
	if v, ok := c.Get(StartTimeKey); ok {
		if start, ok := v.(time.Time); ok {
			r.Start = start
		}
	}
}

func responseTime(r Response) string {
	if !r.Start.IsZero() {
		return FormatElapsed(r.Start)
	}
	if r.ResponseTime != "" {
		return r.ResponseTime
	}
	return "0ms"
}

func nonNil(errs []string) []string {
	if errs == nil {
		return []string{}
	}
	return errs
}
