package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"siparis/domain/core"
	"siparis/models"
	"siparis/ports"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrDuplicateUser is returned when the email or username is already taken
var ErrDuplicateUser = errors.New("user already exists")

// UserRepositoryImpl implements UserRepository for PostgreSQL
type UserRepositoryImpl struct {
	db *sqlx.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sqlx.DB) ports.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// GetUserByID retrieves a user by their ID
func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, userID core.UserID) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, email, username, role, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`, userID.String())

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", core.ErrUserNotFound, userID)
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateUser creates a new user, assigning an ID when none is set
func (r *UserRepositoryImpl) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = core.UserID(core.NewID())
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO users (id, email, username, role, is_active, created_at, updated_at)
		VALUES (:id, :email, :username, :role, :is_active, NOW(), NOW())
	`, user)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
		return fmt.Errorf("%w: %s", ErrDuplicateUser, user.Email)
	}
	return err
}
