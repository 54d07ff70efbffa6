package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/wimtiaz/user_registration_service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

// successResponse is the envelope returned on every successful call.
// swagger:model http.successResponse
type successResponse struct {
	Status      int         `json:"status" example:"201"`
	TimeStamp   string      `json:"timeStamp" example:"2024-05-01 12:30:45"`
	ResourceURI string      `json:"resourceUri" example:"/v1/users/7"`
	Object      interface{} `json:"object" swaggertype:"object"`
}

// errorResponse is the envelope returned on every failure. ErrorNumber is
// the stable internal code; Messages holds one entry per violated rule.
// swagger:model http.errorResponse
type errorResponse struct {
	Status       int      `json:"status" example:"400"`
	ErrorNumber  int      `json:"errorNumber" example:"457"`
	TimeStamp    string   `json:"timeStamp" example:"2024-05-01 12:30:45"`
	Messages     []string `json:"messages"`
	DebugMessage string   `json:"debugMessage,omitempty"`
}

func newSuccessResponse(c *gin.Context, statusCode int, timestampLayout, resourceURI string, object interface{}) {
	c.JSON(statusCode, successResponse{
		Status:      statusCode,
		TimeStamp:   time.Now().Format(timestampLayout),
		ResourceURI: resourceURI,
		Object:      object,
	})
}

func newErrorResponse(c *gin.Context, statusCode, errorNumber int, timestampLayout string, messages []string, debugMessage string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{
		Status:       statusCode,
		ErrorNumber:  errorNumber,
		TimeStamp:    time.Now().Format(timestampLayout),
		Messages:     messages,
		DebugMessage: debugMessage,
	})
}

// writeDomainError maps a pipeline error onto the wire: bad request errors
// become 400, internal ones 500, anything unclassified 500 with code 517.
func writeDomainError(c *gin.Context, timestampLayout string, err error) {
	var domainErr *domain.Error
	if !errors.As(err, &domainErr) {
		newErrorResponse(c, http.StatusInternalServerError, domain.CodeUnknownInternalServerError,
			timestampLayout, []string{err.Error()}, "")
		return
	}

	statusCode := http.StatusBadRequest
	if domainErr.Kind == domain.KindInternal {
		statusCode = http.StatusInternalServerError
	}

	debugMessage := ""
	if domainErr.Err != nil {
		debugMessage = domainErr.Err.Error()
	}
	newErrorResponse(c, statusCode, domainErr.Code, timestampLayout, domainErr.Messages, debugMessage)
}
