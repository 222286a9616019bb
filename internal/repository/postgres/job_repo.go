package postgres

import (
	"context"
	"errors"

	"go-jobplus-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, company_id, name, salary_low, salary_high, location, tags,
	experience_requirement, degree_requirement, is_fulltime, is_open, views_count, created_at, updated_at`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	err := row.Scan(
		&job.ID, &job.CompanyID, &job.Name, &job.SalaryLow, &job.SalaryHigh, &job.Location, &job.Tags,
		&job.ExperienceRequirement, &job.DegreeRequirement, &job.IsFulltime, &job.IsOpen,
		&job.ViewsCount, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO job (company_id, name, salary_low, salary_high, location, tags,
                experience_requirement, degree_requirement, is_fulltime, is_open, views_count, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.CompanyID, job.Name, job.SalaryLow, job.SalaryHigh, job.Location, job.Tags,
		job.ExperienceRequirement, job.DegreeRequirement, job.IsFulltime, job.IsOpen,
		job.ViewsCount, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM job WHERE id = $1`
	return scanJob(r.db.QueryRow(ctx, query, id))
}

func (r *jobRepo) fetch(ctx context.Context, query, countQuery string, args ...any) ([]domain.Job, int64, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.CompanyID, &job.Name, &job.SalaryLow, &job.SalaryHigh, &job.Location, &job.Tags,
			&job.ExperienceRequirement, &job.DegreeRequirement, &job.IsFulltime, &job.IsOpen,
			&job.ViewsCount, &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	// Count args come before limit/offset in the arg list.
	if err := r.db.QueryRow(ctx, countQuery, args[:len(args)-2]...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM job ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.fetch(ctx, query, `SELECT COUNT(*) FROM job`, limit, offset)
}

// FetchOpen returns only jobs still accepting applications; the filter is
// server-side so listings cannot be coaxed into exposing closed postings.
func (r *jobRepo) FetchOpen(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM job WHERE is_open ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.fetch(ctx, query, `SELECT COUNT(*) FROM job WHERE is_open`, limit, offset)
}

func (r *jobRepo) FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM job WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.fetch(ctx, query, `SELECT COUNT(*) FROM job WHERE company_id = $1`, companyID, limit, offset)
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE job SET
		name = $2,
		salary_low = $3,
		salary_high = $4,
		location = $5,
		tags = $6,
		experience_requirement = $7,
		degree_requirement = $8,
		is_fulltime = $9,
		is_open = $10,
		updated_at = $11
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Name, job.SalaryLow, job.SalaryHigh, job.Location, job.Tags,
		job.ExperienceRequirement, job.DegreeRequirement, job.IsFulltime, job.IsOpen,
		job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM job WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) IncrementViews(ctx context.Context, id int64) (int, error) {
	// Single UPDATE so N concurrent viewers add exactly N.
	query := `UPDATE job SET views_count = views_count + 1 WHERE id = $1 RETURNING views_count`
	var views int
	err := r.db.QueryRow(ctx, query, id).Scan(&views)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return views, nil
}
