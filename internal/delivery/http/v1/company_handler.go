package v1

import (
	"net/http"
	"strconv"

	"go-jobplus-backend/internal/delivery/http/response"
	"go-jobplus-backend/internal/domain"
	"go-jobplus-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
	jobUC     domain.JobUsecase
	perPage   int
}

func NewCompanyHandler(rg *gin.RouterGroup, companyUC domain.CompanyUsecase, jobUC domain.JobUsecase, perPage int) {
	handler := &CompanyHandler{companyUC: companyUC, jobUC: jobUC, perPage: perPage}

	companies := rg.Group("/companies")
	{
		companies.GET("", handler.List)
		companies.POST("", handler.Create)
		companies.GET("/:slug", handler.GetBySlug)
		companies.GET("/:slug/jobs", handler.ListJobs)
		companies.PUT("/:id", handler.Update)
		companies.DELETE("/:id", handler.Delete)
	}
}

type CompanyRequest struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug" binding:"required"`
	Logo     string `json:"logo" binding:"required"`
	Site     string `json:"site" binding:"required"`
	Contact  string `json:"contact" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Location string `json:"location" binding:"required"`

	Description      string `json:"description"`
	About            string `json:"about"`
	Tags             string `json:"tags"`
	Stack            string `json:"stack"`
	TeamIntroduction string `json:"team_introduction"`
	Welfares         string `json:"welfares"`

	UserID *int64 `json:"user_id"`
}

func (req *CompanyRequest) toDomain() *domain.Company {
	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	return &domain.Company{
		Name:             req.Name,
		Slug:             req.Slug,
		Logo:             req.Logo,
		Site:             req.Site,
		Contact:          req.Contact,
		Email:            req.Email,
		Location:         req.Location,
		Description:      toPtr(req.Description),
		About:            toPtr(req.About),
		Tags:             toPtr(req.Tags),
		Stack:            toPtr(req.Stack),
		TeamIntroduction: toPtr(req.TeamIntroduction),
		Welfares:         toPtr(req.Welfares),
		UserID:           req.UserID,
	}
}

// Create godoc
// @Summary      Create a company profile
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company  body      CompanyRequest  true  "Company JSON"
// @Success      201      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company := req.toDomain()
	if err := h.companyUC.CreateCompany(c, company); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Company created", company)
}

func (h *CompanyHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	companies, total, err := h.companyUC.ListCompanies(c, page, h.perPage)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company list", gin.H{
		"companies": companies,
		"total":     total,
		"page":      page,
		"page_size": h.perPage,
	})
}

func (h *CompanyHandler) GetBySlug(c *gin.Context) {
	company, err := h.companyUC.GetCompanyBySlug(c, c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company details", company)
}

func (h *CompanyHandler) ListJobs(c *gin.Context) {
	company, err := h.companyUC.GetCompanyBySlug(c, c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	jobs, total, err := h.jobUC.ListJobsByCompany(c, company.ID, page, h.perPage)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company jobs", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": h.perPage,
	})
}

func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company := req.toDomain()
	company.ID = id

	if err := h.companyUC.UpdateCompany(c, company); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company updated", company)
}

// Delete removes a company; its jobs go with it, deliveries against those
// jobs keep their rows with the job reference cleared.
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.companyUC.DeleteCompany(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company deleted", nil)
}
