package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"bitinglip/internal/service"
	"bitinglip/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Response success envelope
type Response struct {
	Data    interface{} `json:"data"`
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse error body
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Data: data, Success: true})
}

func respondMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{Data: data, Success: true, Message: message})
}

// respondError maps service errors to HTTP; NotFound is the only domain error
func respondError(c *gin.Context, err error) {
	if service.IsNotFound(err) {
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})
		return
	}
	logger.ErrorCtx(c.Request.Context(), "request failed: %v", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Internal Server Error"})
}

// NotFound answers unknown routes in the same {detail} shape as other errors
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Not Found"})
}

// MethodNotAllowed answers known paths requested with an unsupported method
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Detail: "Method Not Allowed"})
}

// bindPayload decodes the body as a JSON object. Missing or malformed bodies
// yield an empty payload.
func bindPayload(c *gin.Context) map[string]interface{} {
	payload := map[string]interface{}{}
	if c.Request.Body == nil {
		return payload
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		return payload
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		logger.DebugCtx(c.Request.Context(), "ignoring malformed request body: %v", err)
		return map[string]interface{}{}
	}
	return payload
}

// optionalString returns the value of key as a string. Other JSON values are
// kept as their JSON text; absent or null values give nil.
func optionalString(payload map[string]interface{}, key string) *string {
	switch v := payload[key].(type) {
	case nil:
		return nil
	case string:
		return &v
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		s := string(raw)
		return &s
	}
}

// optionalObject returns the object value of key, or nil
func optionalObject(payload map[string]interface{}, key string) map[string]interface{} {
	if m, ok := payload[key].(map[string]interface{}); ok {
		return m
	}
	return nil
}
