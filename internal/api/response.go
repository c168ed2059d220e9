package api

import "github.com/gin-gonic/gin"

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		StatusCode: status,
		Success:    true,
		Message:    message,
		Data:       data,
	})
}

func respondError(c *gin.Context, status int, message string, err error) {
	envelope := Envelope{
		StatusCode: status,
		Success:    false,
		Message:    message,
	}
	if err != nil {
		envelope.Error = err.Error()
	}
	c.JSON(status, envelope)
}
