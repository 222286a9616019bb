package postgres

import (
	"context"
	"errors"

	"go-jobplus-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type deliveryRepo struct {
	db *pgxpool.Pool
}

func NewDeliveryRepository(db *pgxpool.Pool) domain.DeliveryRepository {
	return &deliveryRepo{db: db}
}

const deliveryColumns = `id, job_id, user_id, status, response, created_at, updated_at`

func scanDelivery(row pgx.Row) (*domain.Delivery, error) {
	var d domain.Delivery
	err := row.Scan(&d.ID, &d.JobID, &d.UserID, &d.Status, &d.Response, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *deliveryRepo) Create(ctx context.Context, delivery *domain.Delivery) error {
	query := `INSERT INTO delivery (job_id, user_id, status, response, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		delivery.JobID, delivery.UserID, delivery.Status, delivery.Response,
		delivery.CreatedAt, delivery.UpdatedAt,
	).Scan(&delivery.ID)
}

func (r *deliveryRepo) GetByID(ctx context.Context, id int64) (*domain.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM delivery WHERE id = $1`
	return scanDelivery(r.db.QueryRow(ctx, query, id))
}

func (r *deliveryRepo) Exists(ctx context.Context, jobID, userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM delivery WHERE job_id = $1 AND user_id = $2)`
	if err := r.db.QueryRow(ctx, query, jobID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *deliveryRepo) fetchList(ctx context.Context, query string, args ...any) ([]domain.Delivery, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deliveries []domain.Delivery
	for rows.Next() {
		var d domain.Delivery
		if err := rows.Scan(&d.ID, &d.JobID, &d.UserID, &d.Status, &d.Response, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, rows.Err()
}

func (r *deliveryRepo) FetchByUserID(ctx context.Context, userID int64) ([]domain.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM delivery WHERE user_id = $1 ORDER BY created_at DESC`
	return r.fetchList(ctx, query, userID)
}

func (r *deliveryRepo) FetchByJobID(ctx context.Context, jobID int64) ([]domain.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM delivery WHERE job_id = $1 ORDER BY created_at DESC`
	return r.fetchList(ctx, query, jobID)
}

func (r *deliveryRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Delivery, int64, error) {
	query := `SELECT ` + deliveryColumns + ` FROM delivery ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	deliveries, err := r.fetchList(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM delivery`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return deliveries, total, nil
}

func (r *deliveryRepo) UpdateStatus(ctx context.Context, id int64, status domain.DeliveryStatus, response *string) error {
	// Only a waiting delivery can be settled; the status guard makes the
	// decision terminal even under concurrent updates.
	query := `UPDATE delivery SET status = $2, response = COALESCE($3, response), updated_at = now() WHERE id = $1 AND status = $4`
	result, err := r.db.Exec(ctx, query, id, status, response, domain.DeliveryStatusWaiting)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
