package postgres

import (
	"context"
	"errors"

	"go-jobplus-backend/internal/domain"
	"go-jobplus-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

const companyColumns = `id, name, slug, logo, site, contact, email, location,
	description, about, tags, stack, team_introduction, welfares, user_id, created_at, updated_at`

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Logo, &c.Site, &c.Contact, &c.Email, &c.Location,
		&c.Description, &c.About, &c.Tags, &c.Stack, &c.TeamIntroduction, &c.Welfares,
		&c.UserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO company (name, slug, logo, site, contact, email, location,
                description, about, tags, stack, team_introduction, welfares, user_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
              RETURNING id`
	err := r.db.QueryRow(ctx, query,
		company.Name, company.Slug, company.Logo, company.Site, company.Contact,
		company.Email, company.Location, company.Description, company.About,
		company.Tags, company.Stack, company.TeamIntroduction, company.Welfares,
		company.UserID, company.CreatedAt, company.UpdatedAt,
	).Scan(&company.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Company name or slug already taken")
		}
		return err
	}
	return nil
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM company WHERE id = $1`
	return scanCompany(r.db.QueryRow(ctx, query, id))
}

func (r *companyRepo) GetBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM company WHERE slug = $1`
	return scanCompany(r.db.QueryRow(ctx, query, slug))
}

func (r *companyRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM company WHERE user_id = $1`
	return scanCompany(r.db.QueryRow(ctx, query, userID))
}

func (r *companyRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Company, int64, error) {
	query := `SELECT ` + companyColumns + ` FROM company ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Slug, &c.Logo, &c.Site, &c.Contact, &c.Email, &c.Location,
			&c.Description, &c.About, &c.Tags, &c.Stack, &c.TeamIntroduction, &c.Welfares,
			&c.UserID, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		companies = append(companies, c)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM company`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `UPDATE company SET
		name = $2,
		slug = $3,
		logo = $4,
		site = $5,
		contact = $6,
		email = $7,
		location = $8,
		description = $9,
		about = $10,
		tags = $11,
		stack = $12,
		team_introduction = $13,
		welfares = $14,
		updated_at = $15
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Slug, company.Logo, company.Site,
		company.Contact, company.Email, company.Location, company.Description,
		company.About, company.Tags, company.Stack, company.TeamIntroduction,
		company.Welfares, company.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Company name or slug already taken")
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) Delete(ctx context.Context, id int64) error {
	// Jobs cascade at the schema level; deliveries aimed at those jobs keep
	// their rows with job_id cleared.
	query := `DELETE FROM company WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
