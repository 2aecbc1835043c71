package handlers

import (
	"net/http"

	"skillswap_backend/internal/middleware"
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/services"
	"skillswap_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("/users", h.ListUsers)
		admin.PUT("/users/:userId/status", h.SetUserStatus)
		admin.GET("/swaps", h.ListSwaps)
		admin.DELETE("/ratings/:ratingId", h.DeleteRating)
		admin.GET("/stats", h.PlatformStats)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	resp, err := h.adminService.ListUsers(h.GetDB(c), ParsePage(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SetUserStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.adminService.SetUserStatus(h.GetDB(c), adminID, c.Param("userId"), models.UserStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func (h *AdminHandler) ListSwaps(c *gin.Context) {
	resp, err := h.adminService.ListSwaps(h.GetDB(c), ParsePage(c), c.Query("user_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DeleteRating(c *gin.Context) {
	if err := h.adminService.DeleteRating(h.GetDB(c), c.Param("ratingId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted"})
}

func (h *AdminHandler) PlatformStats(c *gin.Context) {
	resp, err := h.adminService.PlatformStats(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
