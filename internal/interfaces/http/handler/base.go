package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hjumpers/backend/internal/domain/shared"
	"github.com/hjumpers/backend/internal/interfaces/http/dto"
)

// BaseHandler provides the response helpers shared by all entity handlers
type BaseHandler struct{}

// Entity sends a 200 response with a single entity
func (h *BaseHandler) Entity(c *gin.Context, key string, entity any) {
	c.JSON(http.StatusOK, dto.NewEntityResponse(key, entity))
}

// Created sends a 201 response with the created entity
func (h *BaseHandler) Created(c *gin.Context, key string, entity any) {
	c.JSON(http.StatusCreated, dto.NewEntityResponse(key, entity))
}

// List sends a 200 response with a collection and its count
func (h *BaseHandler) List(c *gin.Context, key string, items any, total int) {
	c.JSON(http.StatusOK, dto.NewListResponse(key, items, total))
}

// Deleted sends a 200 response with the removed entity and a confirmation
func (h *BaseHandler) Deleted(c *gin.Context, key string, entity any, message string) {
	c.JSON(http.StatusOK, dto.NewDeletedResponse(key, entity, message))
}

// BadRequest sends a 400 error response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message))
}

// HandleDomainError maps a domain error onto the storefront envelope and the
// status code its error code calls for
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.GetHTTPStatus(domainErr.Code), dto.NewErrorResponse(domainErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("An unexpected error occurred"))
}

// pathID parses the numeric :id path parameter
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter; absent or malformed
// values read as zero, matching the storefront's tolerant query handling
func queryInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
