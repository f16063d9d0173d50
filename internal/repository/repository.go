package repository

import (
	"context"
	"errors"
	"fmt"

	"nsslens/internal/db"
)

type ContestRepository struct {
	db Storage
}

func NewContestRepository(db Storage) *ContestRepository {
	return &ContestRepository{
		db: db,
	}
}

func (r *ContestRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &PhotoSubmission{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *ContestRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.Insert(ctx, &user)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// UserExists reports whether a user with the given VIT ID or email is already
// registered.
func (r *ContestRepository) UserExists(ctx context.Context, vitID, email string) (bool, error) {
	var user User

	err := r.db.GetOneBy(ctx, "vit_id", vitID, &user)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return false, fmt.Errorf("get user by vit_id: %w", err)
	}

	err = r.db.GetOneBy(ctx, "email", email, &user)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return false, fmt.Errorf("get user by email: %w", err)
	}

	return false, nil
}

func (r *ContestRepository) CreateSubmission(ctx context.Context, submission PhotoSubmission) error {
	err := r.db.Insert(ctx, &submission)
	if err != nil {
		return fmt.Errorf("insert photo submission: %w", err)
	}

	return nil
}
