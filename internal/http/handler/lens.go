package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"nsslens/internal/core"
	"nsslens/internal/http/handler/middleware"
	"nsslens/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Index       = "GET /{$}"
	Register    = "POST /register"
	SubmitPhoto = "POST /submit_photo"
)

// indexRedirectTarget is the statically served registration page.
const indexRedirectTarget = "/static/index.html"

type LensHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	lens             ContestService
	maxUploadBytes   int64
}

func NewLensHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, contestService ContestService, maxUploadBytes int64) *LensHandler {
	return &LensHandler{
		logs:             logger,
		requestValidator: requestValidator,
		lens:             contestService,
		maxUploadBytes:   maxUploadBytes,
	}
}

func (h *LensHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, indexRedirectTarget, http.StatusFound)
}

func (h *LensHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	var payload payload.RegisterRequest
	err := h.requestValidator.DecodeAndValidateForm(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Registration failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	err = h.lens.Register(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Registration failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserExists) {
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.logs.Infow("user registered",
		"vit_id", payload.VitID,
		"handler", Register,
		"request_id", requestId)

	h.respond(w, Response{Message: "Registration successful!"}, http.StatusCreated, requestId)
}

func (h *LensHandler) HandleSubmitPhoto(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	var submission payload.SubmissionRequest
	err := h.requestValidator.DecodeAndValidateForm(r, &submission)
	if err != nil {
		h.respond(w, Response{
			Message: "Photo submission failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SubmitPhoto,
			"request_id", requestId)
		return
	}

	content, err := submission.Photo.Open()
	if err != nil {
		h.respond(w, Response{
			Message: "Photo submission failed",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to open uploaded file",
			"error", err,
			"handler", SubmitPhoto,
			"request_id", requestId)
		return
	}
	defer content.Close()

	err = h.lens.SubmitPhoto(r.Context(), submission.ToMessage(), content)
	if err != nil {
		h.respond(w, Response{
			Message: "Photo submission failed",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("photo submission failed",
			"error", err,
			"handler", SubmitPhoto,
			"request_id", requestId)
		return
	}

	h.logs.Infow("photo submitted",
		"vit_id", submission.VitID,
		"title", submission.PhotoTitle,
		"handler", SubmitPhoto,
		"request_id", requestId)

	h.respond(w, Response{Message: "Photo submitted successfully!"}, http.StatusCreated, requestId)
}

func (h *LensHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
