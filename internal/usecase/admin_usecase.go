package usecase

import (
	"context"

	"go-jobplus-backend/internal/domain"
)

// adminUsecase serves moderation listings paginated by the admin page size
// from configuration.
type adminUsecase struct {
	userRepo     domain.UserRepository
	deliveryRepo domain.DeliveryRepository
	perPage      int
}

func NewAdminUsecase(userRepo domain.UserRepository, deliveryRepo domain.DeliveryRepository, perPage int) domain.AdminUsecase {
	if perPage < 1 {
		perPage = 10
	}
	return &adminUsecase{
		userRepo:     userRepo,
		deliveryRepo: deliveryRepo,
		perPage:      perPage,
	}
}

func (u *adminUsecase) ListUsers(ctx context.Context, page int) ([]domain.User, int64, error) {
	if page < 1 {
		page = 1
	}
	return u.userRepo.Fetch(ctx, u.perPage, (page-1)*u.perPage)
}

func (u *adminUsecase) ListDeliveries(ctx context.Context, page int) ([]domain.Delivery, int64, error) {
	if page < 1 {
		page = 1
	}
	return u.deliveryRepo.Fetch(ctx, u.perPage, (page-1)*u.perPage)
}
