package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authpanel/internal/shared/constants"
	"authpanel/internal/shared/errors"
)

// RenderError renders the shared error page. The panel is HTML-only, so
// every failure surface goes through the same template.
func RenderError(c *gin.Context, statusCode int, message string) {
	c.HTML(statusCode, "error.html", gin.H{
		"Code":    statusCode,
		"Message": message,
	})
}

// RenderErrorFromErr renders the error page for an application error,
// hiding internal details behind a generic message.
func RenderErrorFromErr(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		RenderError(c, appErr.Code, appErr.Message)
		return
	}
	RenderError(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
}

// NoContentResponse answers an event post that carries no body.
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
