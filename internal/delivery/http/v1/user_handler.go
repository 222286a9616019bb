package v1

import (
	"net/http"
	"strconv"

	"go-jobplus-backend/internal/delivery/http/response"
	"go-jobplus-backend/internal/domain"
	"go-jobplus-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authUC     domain.AuthUsecase
	jobUC      domain.JobUsecase
	deliveryUC domain.DeliveryUsecase
}

func NewUserHandler(rg *gin.RouterGroup, authUC domain.AuthUsecase, jobUC domain.JobUsecase, deliveryUC domain.DeliveryUsecase) {
	handler := &UserHandler{authUC: authUC, jobUC: jobUC, deliveryUC: deliveryUC}

	users := rg.Group("/users")
	{
		users.GET("/:id", handler.Get)
		users.DELETE("/:id", handler.Delete)
		users.PUT("/:id/password", handler.SetPassword)

		users.GET("/:id/collections", handler.ListCollections)
		users.POST("/:id/collections/:jobID", handler.Collect)
		users.DELETE("/:id/collections/:jobID", handler.Uncollect)

		users.GET("/:id/deliveries", handler.ListDeliveries)
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.Error(apperror.BadRequest("Invalid " + name))
		return 0, false
	}
	return id, true
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.authUC.GetUser(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.authUC.DeleteUser(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User deleted", nil)
}

type SetPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) SetPassword(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.SetPassword(c, id, req.Password); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Password updated", nil)
}

func (h *UserHandler) ListCollections(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	jobs, err := h.jobUC.ListCollectedJobs(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Collected jobs", jobs)
}

func (h *UserHandler) Collect(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	jobID, ok := pathID(c, "jobID")
	if !ok {
		return
	}

	if err := h.jobUC.CollectJob(c, id, jobID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job collected", nil)
}

func (h *UserHandler) Uncollect(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	jobID, ok := pathID(c, "jobID")
	if !ok {
		return
	}

	if err := h.jobUC.UncollectJob(c, id, jobID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job uncollected", nil)
}

func (h *UserHandler) ListDeliveries(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deliveries, err := h.deliveryUC.ListByUser(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User deliveries", deliveries)
}
