package handlers

import (
	"net/http"

	"skillswap_backend/internal/services"
	"skillswap_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

// The directory is public: browsing does not require an account.
func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	search := r.Group("/search")
	{
		search.GET("/profiles", h.SearchProfiles)
		search.GET("/skills/suggest", h.SuggestSkills)
	}
}

func (h *SearchHandler) SearchProfiles(c *gin.Context) {
	var criteria dto.SearchCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	resp, err := h.searchService.SearchProfiles(h.GetDB(c), &criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) SuggestSkills(c *gin.Context) {
	resp, err := h.searchService.SuggestSkills(h.GetDB(c), c.Query("q"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
