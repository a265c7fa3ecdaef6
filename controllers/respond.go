package controllers

import (
	"log"

	"github.com/gin-gonic/gin"

	"hotel-admin/services"
	"hotel-admin/utils"
)

// respondError writes the error envelope for err. Underlying store errors
// are logged and never sent to the client.
func respondError(c *gin.Context, err error) {
	appErr := services.AsAppError(err)
	if appErr.Err != nil {
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
	}

	errs := append([]string{string(appErr.Kind)}, appErr.Details...)
	message := appErr.Message
	if appErr.Kind == services.KindInternal {
		message = "Internal server error"
	}

	utils.RespondError(c, utils.Response{
		Code:    appErr.Kind.Status(),
		Message: message,
		Errors:  errs,
	})
}

func respondData(c *gin.Context, code int, message string, data any) {
	utils.Respond(c, utils.Response{Code: code, Message: message, Data: data})
}

func badBody(err error) error {
	log.Printf("❌ JSON BINDING ERROR (400): %v", err)
	return services.Validation("Invalid request body", "request body must be valid JSON")
}
