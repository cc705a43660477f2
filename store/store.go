// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/quickly-polls/models"
)

var (
	ErrQuestionNotFound  = errors.New("question not found")
	ErrChoiceNotFound    = errors.New("choice not found")
	ErrChoiceNotSelected = errors.New("no choice selected")
)

// Store reads and writes questions and choices. Timestamps are stored in UTC.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListLatest returns up to limit questions visible in the listing at now
func (s *Store) ListLatest(ctx context.Context, now time.Time, limit int) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT q.id, q.question_text, q.pub_date
		FROM question q
		WHERE q.pub_date <= $1
		  AND EXISTS (SELECT 1 FROM choice c WHERE c.question_id = q.id)
		ORDER BY q.pub_date DESC, q.id ASC
		LIMIT $2
	`, now.UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.PubDate); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}
	// Release the connection before loading choices
	rows.Close()

	for i := range questions {
		choices, err := s.listChoices(ctx, questions[i].ID)
		if err != nil {
			return nil, err
		}
		questions[i].Choices = choices
	}

	return models.FilterListing(questions, now, limit), nil
}

// GetQuestion returns a question with its choices, without visibility checks
func (s *Store) GetQuestion(ctx context.Context, id int64) (models.Question, error) {
	var q models.Question
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = $1
	`, id).Scan(&q.ID, &q.Text, &q.PubDate)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, ErrQuestionNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to query question: %w", err)
	}

	q.Choices, err = s.listChoices(ctx, q.ID)
	if err != nil {
		return models.Question{}, err
	}

	return q, nil
}

func (s *Store) listChoices(ctx context.Context, questionID int64) ([]models.Choice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.Text, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate choices: %w", err)
	}

	return choices, nil
}
