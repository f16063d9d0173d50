package core

import (
	"context"
	"io"

	"nsslens/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) error
	UserExists(ctx context.Context, vitID, email string) (bool, error)
	CreateSubmission(ctx context.Context, submission repository.PhotoSubmission) error
}

//counterfeiter:generate -o fake -fake-name FileStore . FileStore
type FileStore interface {
	Save(name string, content io.Reader) (string, error)
	Remove(name string) error
}
