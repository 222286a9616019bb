package domain

import (
	"context"
	"time"
)

type Company struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"required,max=64"`
	Slug     string `json:"slug" validate:"required,max=24"` // unique, URL-safe identifier
	Logo     string `json:"logo" validate:"required"`
	Site     string `json:"site" validate:"required"`
	Contact  string `json:"contact" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Location string `json:"location" validate:"required"`

	Description      *string `json:"description"`
	About            *string `json:"about"`
	Tags             *string `json:"tags"`
	Stack            *string `json:"stack"`
	TeamIntroduction *string `json:"team_introduction"`
	Welfares         *string `json:"welfares"`

	// Owning user; cleared (not cascaded) when the user is deleted.
	UserID *int64 `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	GetBySlug(ctx context.Context, slug string) (*Company, error)
	GetByUserID(ctx context.Context, userID int64) (*Company, error)
	Fetch(ctx context.Context, limit, offset int) ([]Company, int64, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id int64) error
}

type CompanyUsecase interface {
	CreateCompany(ctx context.Context, company *Company) error
	GetCompany(ctx context.Context, id int64) (*Company, error)
	GetCompanyBySlug(ctx context.Context, slug string) (*Company, error)
	ListCompanies(ctx context.Context, page, pageSize int) ([]Company, int64, error)
	UpdateCompany(ctx context.Context, company *Company) error
	DeleteCompany(ctx context.Context, id int64) error
}
