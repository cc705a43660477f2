// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/quickly-polls/auth"
	"github.com/danielhkuo/quickly-polls/cliparse"
	"github.com/danielhkuo/quickly-polls/middleware"
	"github.com/danielhkuo/quickly-polls/models"
	"github.com/danielhkuo/quickly-polls/store"
)

// AdminHandler creates and removes questions and choices. Nothing here
// applies the visibility rules.
type AdminHandler struct {
	store *store.Store
	cfg   cliparse.Config
	now   func() time.Time
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: store.New(db), cfg: cfg, now: time.Now}
}

// CreateQuestion handles POST /admin/questions
func (h *AdminHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !store.ValidText(req.Text) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_text must be 1-200 characters")
		return
	}

	pubDate := h.now()
	if req.PubDate != nil {
		pubDate = *req.PubDate
	}

	questionID, err := h.store.CreateQuestion(r.Context(), strings.TrimSpace(req.Text), pubDate)
	if err != nil {
		slog.Error("failed to create question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", questionID, "pub_date", pubDate)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuestionResponse{
		QuestionID: questionID,
	})
}

// AddChoice handles POST /admin/questions/{id}/choices
func (h *AdminHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	questionID, ok := questionIDFromPath(w, r)
	if !ok {
		return
	}

	var req models.AddChoiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !store.ValidText(req.Text) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choice_text must be 1-200 characters")
		return
	}

	choiceID, err := h.store.AddChoice(r.Context(), questionID, strings.TrimSpace(req.Text))
	if errors.Is(err, store.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to add choice", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create choice")
		return
	}

	slog.Info("choice added", "question_id", questionID, "choice_id", choiceID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddChoiceResponse{
		ChoiceID: choiceID,
	})
}

// GetQuestion handles GET /admin/questions/{id}
// Returns the question with vote counts regardless of pub_date
func (h *AdminHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	questionID, ok := questionIDFromPath(w, r)
	if !ok {
		return
	}

	question, err := h.store.GetQuestion(r.Context(), questionID)
	if errors.Is(err, store.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, question)
}

// DeleteQuestion handles DELETE /admin/questions/{id}
func (h *AdminHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	questionID, ok := questionIDFromPath(w, r)
	if !ok {
		return
	}

	err := h.store.DeleteQuestion(r.Context(), questionID)
	if errors.Is(err, store.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete question", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete question")
		return
	}

	slog.Info("question deleted", "question_id", questionID)

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	if err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

func questionIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	questionID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || questionID < 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id must be a positive integer")
		return 0, false
	}
	return questionID, true
}
