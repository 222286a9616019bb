package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobplus-backend/internal/domain"
	"go-jobplus-backend/pkg/apperror"
)

type deliveryUsecase struct {
	deliveryRepo domain.DeliveryRepository
	jobRepo      domain.JobRepository
	userRepo     domain.UserRepository
}

func NewDeliveryUsecase(deliveryRepo domain.DeliveryRepository, jobRepo domain.JobRepository, userRepo domain.UserRepository) domain.DeliveryUsecase {
	return &deliveryUsecase{
		deliveryRepo: deliveryRepo,
		jobRepo:      jobRepo,
		userRepo:     userRepo,
	}
}

// Apply submits a user's application against an open job.
func (u *deliveryUsecase) Apply(ctx context.Context, jobID, userID int64) (*domain.Delivery, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	if !job.IsOpen {
		return nil, apperror.BadRequest("Job is no longer accepting applications")
	}

	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	exists, err := u.deliveryRepo.Exists(ctx, jobID, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	now := time.Now()
	delivery := &domain.Delivery{
		JobID:     &jobID,
		UserID:    &userID,
		Status:    domain.DeliveryStatusWaiting,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.deliveryRepo.Create(ctx, delivery); err != nil {
		return nil, apperror.Internal(err)
	}
	return delivery, nil
}

func (u *deliveryUsecase) GetDelivery(ctx context.Context, id int64) (*domain.Delivery, error) {
	delivery, err := u.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Delivery not found")
		}
		return nil, err
	}
	return delivery, nil
}

func (u *deliveryUsecase) ListByUser(ctx context.Context, userID int64) ([]domain.Delivery, error) {
	return u.deliveryRepo.FetchByUserID(ctx, userID)
}

func (u *deliveryUsecase) ListByJob(ctx context.Context, jobID int64) ([]domain.Delivery, error) {
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return u.deliveryRepo.FetchByJobID(ctx, jobID)
}

// UpdateStatus moves a waiting delivery to rejected or accepted. A decision
// is terminal: settled deliveries cannot be reopened or flipped.
func (u *deliveryUsecase) UpdateStatus(ctx context.Context, id int64, status domain.DeliveryStatus, response string) error {
	if status != domain.DeliveryStatusRejected && status != domain.DeliveryStatusAccepted {
		return apperror.BadRequest("Status must be rejected or accepted")
	}

	delivery, err := u.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Delivery not found")
		}
		return err
	}
	if delivery.Status != domain.DeliveryStatusWaiting {
		return apperror.Conflict("Delivery has already been settled")
	}

	var responsePtr *string
	if response != "" {
		responsePtr = &response
	}

	// The repository only updates rows still in the waiting state. A zero-row
	// update after the fetch above means a concurrent settlement won.
	if err := u.deliveryRepo.UpdateStatus(ctx, id, status, responsePtr); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Conflict("Delivery has already been settled")
		}
		return err
	}
	return nil
}
