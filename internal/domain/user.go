package domain

import (
	"context"
	"time"
)

// Role classifies a user as job seeker, company representative or admin.
// The numeric values are persisted, so they are part of the schema.
type Role int16

const (
	RoleUser    Role = 10
	RoleCompany Role = 20
	RoleAdmin   Role = 30
)

// Valid reports whether r is a member of the closed enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleCompany, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID              int64     `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"` // bcrypt hash, never the plaintext
	Role            Role      `json:"role"`
	UploadResumeURL *string   `json:"upload_resume_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsCompany() bool {
	return u.Role == RoleCompany
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	Fetch(ctx context.Context, limit, offset int) ([]User, int64, error)

	// Collected jobs (bookmark association, no extra attributes)
	CollectJob(ctx context.Context, userID, jobID int64) error
	UncollectJob(ctx context.Context, userID, jobID int64) error
	FetchCollectedJobs(ctx context.Context, userID int64) ([]Job, error)
	IsJobCollected(ctx context.Context, userID, jobID int64) (bool, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, username, email, plaintext string, role Role) (*User, error)
	Login(ctx context.Context, username, plaintext string) (*User, error)
	SetPassword(ctx context.Context, userID int64, plaintext string) error
	GetUser(ctx context.Context, id int64) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type AdminUsecase interface {
	ListUsers(ctx context.Context, page int) ([]User, int64, error)
	ListDeliveries(ctx context.Context, page int) ([]Delivery, int64, error)
}
