package handlers

import (
	"net/http"

	"skillswap_backend/internal/middleware"
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/services"
	"skillswap_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SwapHandler struct {
	*BaseHandler
	swapService services.SwapService
}

func NewSwapHandler(base *BaseHandler, swapService services.SwapService) *SwapHandler {
	return &SwapHandler{
		BaseHandler: base,
		swapService: swapService,
	}
}

func (h *SwapHandler) RegisterRoutes(r *gin.RouterGroup) {
	swaps := r.Group("/swaps")
	swaps.Use(middleware.AuthMiddleware())
	{
		swaps.POST("", h.CreateSwap)
		swaps.GET("/my", h.ListMySwaps)
		swaps.GET("/:swapId", h.GetSwap)
		swaps.PUT("/:swapId/status", h.SetStatus)
		swaps.POST("/:swapId/feedback", h.AttachFeedback)
		swaps.DELETE("/:swapId", h.DeleteSwap)
	}
}

func (h *SwapHandler) CreateSwap(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSwapRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.swapService.CreateSwap(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *SwapHandler) ListMySwaps(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.swapService.ListMySwaps(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SwapHandler) GetSwap(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.swapService.GetSwap(h.GetDB(c), c.Param("swapId"), userID, middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SwapHandler) SetStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SetSwapStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.swapService.SetStatus(h.GetDB(c), c.Param("swapId"), userID, models.SwapStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SwapHandler) AttachFeedback(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AttachFeedbackRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.swapService.AttachFeedback(h.GetDB(c), c.Param("swapId"), userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback attached"})
}

func (h *SwapHandler) DeleteSwap(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.swapService.DeleteSwap(h.GetDB(c), c.Param("swapId"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Swap request deleted"})
}
