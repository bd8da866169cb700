package handlers

import (
	"toolbox-api/helper"
	"toolbox-api/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// Index lists the global tag vocabulary with per-tag tool counts. Tags
// are created implicitly through tool writes, so there is no create
// endpoint here.
func (h *TagHandler) Index(c *gin.Context) {
	tags, err := h.tagService.GetTags()
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", tags)
}
