package handlers

import (
	"net/http"

	"skillswap_backend/internal/middleware"
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/services"
	"skillswap_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	*BaseHandler
	skillService services.SkillService
}

func NewSkillHandler(base *BaseHandler, skillService services.SkillService) *SkillHandler {
	return &SkillHandler{
		BaseHandler:  base,
		skillService: skillService,
	}
}

func (h *SkillHandler) RegisterRoutes(r *gin.RouterGroup) {
	skills := r.Group("/skills")
	skills.Use(middleware.AuthMiddleware())
	{
		skills.POST("", h.AddSkill)
		skills.GET("/my", h.ListMySkills)
		skills.GET("/users/:userId", h.ListUserSkills)
		skills.DELETE("/:skillId", h.RemoveSkill)
	}
}

func (h *SkillHandler) AddSkill(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddSkillRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.skillService.AddSkill(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *SkillHandler) ListMySkills(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.listSkills(c, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SkillHandler) ListUserSkills(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	resp, err := h.listSkills(c, c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listSkills honours an optional ?type=offered|wanted query.
func (h *SkillHandler) listSkills(c *gin.Context, userID string) (*dto.SkillListResponse, error) {
	if t := c.Query("type"); t != "" {
		return h.skillService.ListSkillsByType(h.GetDB(c), userID, models.SkillType(t))
	}
	return h.skillService.ListSkills(h.GetDB(c), userID)
}

func (h *SkillHandler) RemoveSkill(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.skillService.RemoveSkill(h.GetDB(c), userID, c.Param("skillId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill removed"})
}
