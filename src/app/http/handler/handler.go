// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Binding and validating requests through the dto package
// - Calling use case methods
// - Rendering results through the dto response constructors
package handler

import (
	"github.com/gin-gonic/gin"

	"shootfed/src/app/http/dto"
	"shootfed/src/app/http/response"
	"shootfed/src/app/middleware"
)

// fail renders err and records it on the context for the request log.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	response.FromDomainError(c, err, middleware.GetRequestID(c))
}

// bindID reads the :id path parameter, rendering a 400 when it is not a UUID.
func bindID(c *gin.Context) (string, bool) {
	var p dto.IDParam
	if err := dto.BindURI(c, &p); err != nil {
		fail(c, err)
		return "", false
	}
	return p.ID, true
}

// readBody returns the raw request body for derived update decoding.
func readBody(c *gin.Context) ([]byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "could not read request body", middleware.GetRequestID(c))
		return nil, false
	}
	return body, true
}
