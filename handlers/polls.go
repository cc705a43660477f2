// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/quickly-polls/auth"
	"github.com/danielhkuo/quickly-polls/cliparse"
	"github.com/danielhkuo/quickly-polls/middleware"
	"github.com/danielhkuo/quickly-polls/models"
	"github.com/danielhkuo/quickly-polls/store"
	"github.com/danielhkuo/quickly-polls/views"
)

// ErrorNoChoice is shown when a vote names no valid choice
const ErrorNoChoice = "You didn't select a choice."

type PollHandler struct {
	store    *store.Store
	cfg      cliparse.Config
	renderer *views.Renderer
	now      func() time.Time
}

func NewPollHandler(db *sql.DB, cfg cliparse.Config) *PollHandler {
	return &PollHandler{
		store:    store.New(db),
		cfg:      cfg,
		renderer: views.MustNewRenderer(),
		now:      time.Now,
	}
}

// Index handles GET /polls/
func (h *PollHandler) Index(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	questions, err := h.store.ListLatest(r.Context(), now, h.cfg.ListingLimit)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		middleware.HTMLError(w, http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, views.PageIndex, views.Context{
		LatestQuestionList: questions,
		Now:                now,
	})
}

// Detail handles GET /polls/{id}/
func (h *PollHandler) Detail(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	question, ok := h.accessibleQuestion(w, r, now)
	if !ok {
		return
	}

	h.render(w, http.StatusOK, views.PageDetail, views.Context{
		Question: &question,
		Now:      now,
	})
}

// Results handles GET /polls/{id}/results/
func (h *PollHandler) Results(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	question, ok := h.accessibleQuestion(w, r, now)
	if !ok {
		return
	}

	h.render(w, http.StatusOK, views.PageResults, views.Context{
		Question: &question,
		Now:      now,
	})
}

// Vote handles POST /polls/{id}/vote/
// A missing or foreign choice redisplays the form; success redirects to
// the results page so a browser refresh cannot resubmit the vote.
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	question, ok := h.accessibleQuestion(w, r, now)
	if !ok {
		return
	}

	choiceID, err := parseChoice(r)
	if err == nil {
		var votes int64
		votes, err = h.store.RecordVote(r.Context(), question.ID, choiceID)
		if err == nil {
			slog.Info("vote recorded",
				"question_id", question.ID,
				"choice_id", *choiceID,
				"votes", votes,
				"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKey),
			)
			http.Redirect(w, r, fmt.Sprintf("/polls/%d/results/", question.ID), http.StatusFound)
			return
		}
	}

	if errors.Is(err, store.ErrChoiceNotSelected) || errors.Is(err, store.ErrChoiceNotFound) {
		h.render(w, http.StatusOK, views.PageDetail, views.Context{
			Question:     &question,
			ErrorMessage: ErrorNoChoice,
			Now:          now,
		})
		return
	}

	slog.Error("failed to record vote", "error", err, "question_id", question.ID)
	middleware.HTMLError(w, http.StatusInternalServerError)
}

// accessibleQuestion loads the question named in the path. It writes a 404
// for malformed IDs, unknown questions and questions not yet published.
func (h *PollHandler) accessibleQuestion(w http.ResponseWriter, r *http.Request, now time.Time) (models.Question, bool) {
	questionID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || questionID < 1 {
		middleware.HTMLError(w, http.StatusNotFound)
		return models.Question{}, false
	}

	question, err := h.store.GetQuestion(r.Context(), questionID)
	if errors.Is(err, store.ErrQuestionNotFound) {
		middleware.HTMLError(w, http.StatusNotFound)
		return models.Question{}, false
	}
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", questionID)
		middleware.HTMLError(w, http.StatusInternalServerError)
		return models.Question{}, false
	}

	if !question.IsAccessibleDetail(now) {
		middleware.HTMLError(w, http.StatusNotFound)
		return models.Question{}, false
	}

	return question, true
}

// parseChoice reads the "choice" form field. An absent field selects
// nothing; a value that is not an ID cannot name any choice.
func parseChoice(r *http.Request) (*int64, error) {
	raw := r.PostFormValue("choice")
	if raw == "" {
		return nil, nil
	}

	choiceID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, store.ErrChoiceNotFound
	}

	return &choiceID, nil
}

func (h *PollHandler) render(w http.ResponseWriter, status int, page string, ctx views.Context) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, ctx); err != nil {
		slog.Error("failed to render page", "error", err, "page", page)
		middleware.HTMLError(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
