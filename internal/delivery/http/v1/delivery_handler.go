package v1

import (
	"net/http"

	"go-jobplus-backend/internal/delivery/http/response"
	"go-jobplus-backend/internal/domain"
	"go-jobplus-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type DeliveryHandler struct {
	deliveryUC domain.DeliveryUsecase
}

func NewDeliveryHandler(rg *gin.RouterGroup, deliveryUC domain.DeliveryUsecase) {
	handler := &DeliveryHandler{deliveryUC: deliveryUC}

	deliveries := rg.Group("/deliveries")
	{
		deliveries.POST("", handler.Apply)
		deliveries.GET("/:id", handler.Get)
		deliveries.PUT("/:id/status", handler.UpdateStatus)
	}

	// Per-job listing lives under jobs for the reviewing company.
	rg.GET("/jobs/:id/deliveries", handler.ListByJob)
}

type ApplyRequest struct {
	JobID  int64 `json:"job_id" binding:"required"`
	UserID int64 `json:"user_id" binding:"required"`
}

// Apply godoc
// @Summary      Apply to a job
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        delivery  body      ApplyRequest  true  "Delivery JSON"
// @Success      201       {object}  response.Response
// @Failure      409       {object}  response.Response
// @Router       /deliveries [post]
func (h *DeliveryHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	delivery, err := h.deliveryUC.Apply(c, req.JobID, req.UserID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", delivery)
}

func (h *DeliveryHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	delivery, err := h.deliveryUC.GetDelivery(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Delivery details", delivery)
}

type UpdateDeliveryStatusRequest struct {
	Status   int16  `json:"status" binding:"required"`
	Response string `json:"response"`
}

// UpdateStatus settles a waiting application as rejected or accepted,
// optionally recording the company's reply.
func (h *DeliveryHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateDeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.deliveryUC.UpdateStatus(c, id, domain.DeliveryStatus(req.Status), req.Response); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Delivery status updated", nil)
}

func (h *DeliveryHandler) ListByJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deliveries, err := h.deliveryUC.ListByJob(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deliveries", deliveries)
}
