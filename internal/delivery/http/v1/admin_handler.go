package v1

import (
	"net/http"
	"strconv"

	"go-jobplus-backend/internal/delivery/http/response"
	"go-jobplus-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(rg *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := rg.Group("/admin")
	{
		admin.GET("/users", handler.ListUsers)
		admin.GET("/deliveries", handler.ListDeliveries)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	users, total, err := h.adminUC.ListUsers(c, page)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User list", gin.H{
		"users": users,
		"total": total,
		"page":  page,
	})
}

func (h *AdminHandler) ListDeliveries(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	deliveries, total, err := h.adminUC.ListDeliveries(c, page)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Delivery list", gin.H{
		"deliveries": deliveries,
		"total":      total,
		"page":       page,
	})
}
