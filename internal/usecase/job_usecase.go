package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobplus-backend/internal/domain"
	"go-jobplus-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
	userRepo    domain.UserRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository, userRepo domain.UserRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
	}
}

func validateJob(job *domain.Job) error {
	if job.Name == "" {
		return apperror.Unprocessable("Name is required")
	}
	if job.SalaryLow < 0 {
		return apperror.Unprocessable("SalaryLow cannot be negative")
	}
	if job.SalaryLow > job.SalaryHigh {
		return apperror.Unprocessable("SalaryLow cannot be greater than SalaryHigh")
	}
	return nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	if err := validateJob(job); err != nil {
		return err
	}

	if _, err := u.companyRepo.GetByID(ctx, job.CompanyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return err
	}

	now := time.Now()
	job.ViewsCount = 0
	job.CreatedAt = now
	job.UpdatedAt = now

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

// ViewJob is GetJob plus one atomic view-count increment; the returned job
// carries the post-increment count.
func (u *jobUsecase) ViewJob(ctx context.Context, id int64) (*domain.Job, error) {
	views, err := u.jobRepo.IncrementViews(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Concurrent viewers may have bumped the count further between the
	// increment and the read; report at least our own view.
	if job.ViewsCount < views {
		job.ViewsCount = views
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, page, pageSize int) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.Fetch(ctx, pageSize, offset)
}

func (u *jobUsecase) ListOpenJobs(ctx context.Context, page, pageSize int) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.FetchOpen(ctx, pageSize, offset)
}

func (u *jobUsecase) ListJobsByCompany(ctx context.Context, companyID int64, page, pageSize int) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.FetchByCompanyID(ctx, companyID, pageSize, offset)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, job *domain.Job) error {
	if err := validateJob(job); err != nil {
		return err
	}

	job.UpdatedAt = time.Now()

	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	return nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id int64) error {
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	return nil
}

func (u *jobUsecase) CollectJob(ctx context.Context, userID, jobID int64) error {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}

	return u.userRepo.CollectJob(ctx, userID, jobID)
}

func (u *jobUsecase) UncollectJob(ctx context.Context, userID, jobID int64) error {
	if err := u.userRepo.UncollectJob(ctx, userID, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job is not collected")
		}
		return err
	}
	return nil
}

func (u *jobUsecase) ListCollectedJobs(ctx context.Context, userID int64) ([]domain.Job, error) {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return u.userRepo.FetchCollectedJobs(ctx, userID)
}
