package handler

import (
	"context"
	"io"
	"net/http"

	"nsslens/internal/core"
	"nsslens/internal/http/payload"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ContestService . ContestService
type ContestService interface {
	Register(ctx context.Context, msg core.RegisterMessage) error
	SubmitPhoto(ctx context.Context, msg core.SubmissionMessage, content io.Reader) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateForm(r *http.Request, object payload.FormPayload) error
}
