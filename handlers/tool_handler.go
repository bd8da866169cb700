package handlers

import (
	"net/http"
	"strconv"

	"toolbox-api/helper"
	"toolbox-api/models"
	"toolbox-api/services"

	"github.com/gin-gonic/gin"
)

type ToolHandler struct {
	toolService services.ToolService
	Helper      *helper.HTTPHelper
}

func NewToolHandler(toolService services.ToolService) *ToolHandler {
	return &ToolHandler{toolService: toolService}
}

func currentUserID(c *gin.Context) uint {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func (h *ToolHandler) Index(c *gin.Context) {
	var params models.ToolListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	tools, total, err := h.toolService.GetTools(params, currentUserID(c))
	if err != nil {
		c.JSON(h.Helper.GetStatusCode(err), gin.H{"message": err.Error()})
		return
	}

	pagination := models.NewPagination(params.Page, params.Limit, total)
	c.JSON(http.StatusOK, models.NewToolCollection(tools, pagination))
}

func (h *ToolHandler) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tool ID"})
		return
	}

	tool, err := h.toolService.GetTool(uint(id), currentUserID(c))
	if err != nil {
		c.JSON(h.Helper.GetStatusCode(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.NewToolResource(tool))
}

func (h *ToolHandler) Store(c *gin.Context) {
	var req models.CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	tool, err := h.toolService.CreateTool(req, currentUserID(c))
	if err != nil {
		c.JSON(h.Helper.GetStatusCode(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.NewToolCreatedResource(tool))
}

func (h *ToolHandler) BulkStore(c *gin.Context) {
	var req models.BulkCreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	tools, err := h.toolService.BulkCreateTools(req, currentUserID(c))
	if err != nil {
		c.JSON(h.Helper.GetStatusCode(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.NewToolCreatedResources(tools))
}

// Update handles both PUT (replace: every field required) and PATCH
// (merge: only supplied fields change). The replace contract is enforced
// by binding the full create shape, then handed to the service as a fully
// populated update.
func (h *ToolHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tool ID"})
		return
	}

	var req models.UpdateToolRequest
	if c.Request.Method == http.MethodPut {
		var full models.CreateToolRequest
		if err := c.ShouldBindJSON(&full); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		req = models.UpdateToolRequest{
			Title:       &full.Title,
			Description: &full.Description,
			Link:        &full.Link,
		}
		// A tags key that was present, even empty, re-synchronizes; an
		// omitted key leaves the existing associations alone.
		if full.Tags != nil {
			req.Tags = &full.Tags
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
	}

	tool, err := h.toolService.UpdateTool(uint(id), req, currentUserID(c))
	if err != nil {
		c.JSON(h.Helper.GetStatusCode(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.NewToolResource(tool))
}

func (h *ToolHandler) Destroy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tool ID"})
		return
	}

	if err := h.toolService.DeleteTool(uint(id), currentUserID(c)); err != nil {
		c.JSON(h.Helper.GetStatusCode(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tool deleted successfully"})
}
