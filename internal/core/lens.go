package core

import (
	"context"
	"errors"
	"fmt"
	"io"

	"nsslens/internal/repository"

	"go.uber.org/zap"
)

var ErrUserExists error = errors.New("user with this VIT ID or email already exists")

// Lens handles contest registrations and photo submissions.
type Lens struct {
	logs  *zap.SugaredLogger
	repo  Repository
	files FileStore
}

func NewLens(logger *zap.SugaredLogger, repo Repository, files FileStore) *Lens {
	return &Lens{
		logs:  logger,
		repo:  repo,
		files: files,
	}
}

// Register creates a user record after checking that neither the VIT ID nor
// the email is already taken. The unique columns remain the final arbiter for
// writes that race past this check.
func (l *Lens) Register(ctx context.Context, msg RegisterMessage) error {
	exists, err := l.repo.UserExists(ctx, msg.VitID, msg.Email)
	if err != nil {
		return fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return ErrUserExists
	}

	user := repository.User{
		FullName: msg.FullName,
		VitID:    msg.VitID,
		Email:    msg.Email,
		Password: msg.Password,
	}
	if err := l.repo.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	l.logs.Infow("user registered", "vit_id", msg.VitID)
	return nil
}

// SubmitPhoto stores the uploaded file and persists the submission record.
// When the insert fails after the file was written, the file is removed so no
// orphaned upload stays on disk.
func (l *Lens) SubmitPhoto(ctx context.Context, msg SubmissionMessage, content io.Reader) error {
	stored, err := l.files.Save(msg.Filename, content)
	if err != nil {
		return fmt.Errorf("save photo file: %w", err)
	}

	submission := repository.PhotoSubmission{
		FullName:      msg.FullName,
		VitID:         msg.VitID,
		PhotoTitle:    msg.PhotoTitle,
		Theme:         msg.Theme,
		Description:   msg.Description,
		PhotoFilename: stored,
	}
	if err := l.repo.CreateSubmission(ctx, submission); err != nil {
		if rmErr := l.files.Remove(stored); rmErr != nil {
			l.logs.Errorw("failed to remove orphaned upload",
				"error", rmErr,
				"filename", stored)
		}
		return fmt.Errorf("save submission: %w", err)
	}

	l.logs.Infow("photo submitted",
		"vit_id", msg.VitID,
		"filename", stored)
	return nil
}
