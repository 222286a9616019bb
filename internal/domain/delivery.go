package domain

import (
	"context"
	"time"
)

// DeliveryStatus tracks an application through the review pipeline.
type DeliveryStatus int16

const (
	DeliveryStatusWaiting  DeliveryStatus = 1
	DeliveryStatusRejected DeliveryStatus = 2
	DeliveryStatusAccepted DeliveryStatus = 3
)

func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryStatusWaiting, DeliveryStatusRejected, DeliveryStatusAccepted:
		return true
	}
	return false
}

// Delivery is one application of a user to a job. Both references are
// nullable: deleting the job or the user clears the pointer, the row stays.
type Delivery struct {
	ID        int64          `json:"id"`
	JobID     *int64         `json:"job_id"`
	UserID    *int64         `json:"user_id"`
	Status    DeliveryStatus `json:"status"`
	Response  *string        `json:"response"` // company's reply
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type DeliveryRepository interface {
	Create(ctx context.Context, delivery *Delivery) error
	GetByID(ctx context.Context, id int64) (*Delivery, error)
	Exists(ctx context.Context, jobID, userID int64) (bool, error)
	FetchByUserID(ctx context.Context, userID int64) ([]Delivery, error)
	FetchByJobID(ctx context.Context, jobID int64) ([]Delivery, error)
	Fetch(ctx context.Context, limit, offset int) ([]Delivery, int64, error)
	UpdateStatus(ctx context.Context, id int64, status DeliveryStatus, response *string) error
}

type DeliveryUsecase interface {
	Apply(ctx context.Context, jobID, userID int64) (*Delivery, error)
	GetDelivery(ctx context.Context, id int64) (*Delivery, error)
	ListByUser(ctx context.Context, userID int64) ([]Delivery, error)
	ListByJob(ctx context.Context, jobID int64) ([]Delivery, error)
	UpdateStatus(ctx context.Context, id int64, status DeliveryStatus, response string) error
}
