// Package respond centralises the uniform JSON envelope every endpoint
// speaks: {success: true, data: ...} on success, {success: false, error: ...}
// on failure, with an extra message for delete confirmations.
package respond

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the wire shape shared by all resource endpoints.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK writes a 200 with the payload wrapped in the success envelope.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 with the created record in the success envelope.
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// Deleted writes a 200 confirmation carrying only a message.
func Deleted(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

// Fail writes the failure envelope with the given status code.
func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Error: message})
}
