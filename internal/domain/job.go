package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type Job struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
	// Compensation range bounds; SalaryLow <= SalaryHigh always holds.
	SalaryLow  int `json:"salary_low"`
	SalaryHigh int `json:"salary_high"`

	Location              *string `json:"location"`
	Tags                  *string `json:"tags"`
	ExperienceRequirement *string `json:"experience_requirement"`
	DegreeRequirement     *string `json:"degree_requirement"`

	IsFulltime bool `json:"is_fulltime"`
	IsOpen     bool `json:"is_open"` // whether applications are accepted

	ViewsCount int `json:"views_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Fetch(ctx context.Context, limit, offset int) ([]Job, int64, error)
	FetchOpen(ctx context.Context, limit, offset int) ([]Job, int64, error)
	FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
	// IncrementViews bumps views_count by one in a single UPDATE and returns
	// the new value, so concurrent viewers never lose updates.
	IncrementViews(ctx context.Context, id int64) (int, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *Job) error
	GetJob(ctx context.Context, id int64) (*Job, error)
	ViewJob(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context, page, pageSize int) ([]Job, int64, error)
	ListOpenJobs(ctx context.Context, page, pageSize int) ([]Job, int64, error)
	ListJobsByCompany(ctx context.Context, companyID int64, page, pageSize int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, job *Job) error
	DeleteJob(ctx context.Context, id int64) error

	CollectJob(ctx context.Context, userID, jobID int64) error
	UncollectJob(ctx context.Context, userID, jobID int64) error
	ListCollectedJobs(ctx context.Context, userID int64) ([]Job, error)
}
