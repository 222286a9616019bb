package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobplus-backend/internal/domain"
	"go-jobplus-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	userRepo    domain.UserRepository
	validate    *validator.Validate
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository, userRepo domain.UserRepository, validate *validator.Validate) domain.CompanyUsecase {
	return &companyUsecase{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		validate:    validate,
	}
}

func (u *companyUsecase) CreateCompany(ctx context.Context, company *domain.Company) error {
	if err := u.validate.Struct(company); err != nil {
		return apperror.Unprocessable(err.Error())
	}

	if company.UserID != nil {
		owner, err := u.userRepo.GetByID(ctx, *company.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.NotFound("Owner not found")
			}
			return err
		}

		// One company per owner.
		if _, err := u.companyRepo.GetByUserID(ctx, owner.ID); err == nil {
			return apperror.Conflict("User already owns a company")
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
	}

	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now

	return u.companyRepo.Create(ctx, company)
}

func (u *companyUsecase) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}
	return company, nil
}

func (u *companyUsecase) GetCompanyBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	company, err := u.companyRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}
	return company, nil
}

func (u *companyUsecase) ListCompanies(ctx context.Context, page, pageSize int) ([]domain.Company, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.companyRepo.Fetch(ctx, pageSize, offset)
}

func (u *companyUsecase) UpdateCompany(ctx context.Context, company *domain.Company) error {
	if err := u.validate.Struct(company); err != nil {
		return apperror.Unprocessable(err.Error())
	}

	company.UpdatedAt = time.Now()

	if err := u.companyRepo.Update(ctx, company); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return err
	}
	return nil
}

func (u *companyUsecase) DeleteCompany(ctx context.Context, id int64) error {
	if err := u.companyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return err
	}
	return nil
}
