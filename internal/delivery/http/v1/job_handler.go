package v1

import (
	"net/http"
	"strconv"

	"go-jobplus-backend/internal/delivery/http/response"
	"go-jobplus-backend/internal/domain"
	"go-jobplus-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC   domain.JobUsecase
	perPage int
}

func NewJobHandler(rg *gin.RouterGroup, jobUC domain.JobUsecase, perPage int) {
	handler := &JobHandler{jobUC: jobUC, perPage: perPage}

	jobs := rg.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
		jobs.GET("/:id", handler.GetDetails)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}
}

type JobRequest struct {
	CompanyID  int64  `json:"company_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	SalaryLow  int    `json:"salary_low" binding:"gte=0"`
	SalaryHigh int    `json:"salary_high" binding:"required,gt=0,gtefield=SalaryLow"`

	Location              string `json:"location"`
	Tags                  string `json:"tags"`
	ExperienceRequirement string `json:"experience_requirement"`
	DegreeRequirement     string `json:"degree_requirement"`

	IsFulltime *bool `json:"is_fulltime"`
	IsOpen     *bool `json:"is_open"`
}

func (req *JobRequest) toDomain() *domain.Job {
	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}
	// Booleans default to true when omitted.
	boolOr := func(p *bool, fallback bool) bool {
		if p == nil {
			return fallback
		}
		return *p
	}

	return &domain.Job{
		CompanyID:             req.CompanyID,
		Name:                  req.Name,
		SalaryLow:             req.SalaryLow,
		SalaryHigh:            req.SalaryHigh,
		Location:              toPtr(req.Location),
		Tags:                  toPtr(req.Tags),
		ExperienceRequirement: toPtr(req.ExperienceRequirement),
		DegreeRequirement:     toPtr(req.DegreeRequirement),
		IsFulltime:            boolOr(req.IsFulltime, true),
		IsOpen:                boolOr(req.IsOpen, true),
	}
}

// Create godoc
// @Summary      Create a new job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := req.toDomain()
	if err := h.jobUC.CreateJob(c, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// List godoc
// @Summary      List open jobs
// @Tags         jobs
// @Produce      json
// @Param        page  query     int   false  "Page number"
// @Param        all   query     bool  false  "Include closed jobs"
// @Success      200   {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	includeAll := c.Query("all") == "true"

	var (
		jobs  []domain.Job
		total int64
		err   error
	)
	if includeAll {
		jobs, total, err = h.jobUC.ListJobs(c, page, h.perPage)
	} else {
		jobs, total, err = h.jobUC.ListOpenJobs(c, page, h.perPage)
	}
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": h.perPage,
	})
}

// GetDetails returns one job and counts the view.
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	job, err := h.jobUC.ViewJob(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := req.toDomain()
	job.ID = id

	if err := h.jobUC.UpdateJob(c, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.jobUC.DeleteJob(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}
