// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// CreateQuestion inserts a question and returns its ID
func (s *Store) CreateQuestion(ctx context.Context, text string, pubDate time.Time) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO question (question_text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, text, pubDate.UTC()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert question: %w", err)
	}

	return id, nil
}

// AddChoice attaches a choice with zero votes to an existing question
func (s *Store) AddChoice(ctx context.Context, questionID int64, text string) (int64, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM question WHERE id = $1)
	`, questionID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to query question: %w", err)
	}
	if !exists {
		return 0, ErrQuestionNotFound
	}

	var id int64
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO choice (question_id, choice_text, votes)
		VALUES ($1, $2, 0)
		RETURNING id
	`, questionID, text).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert choice: %w", err)
	}

	return id, nil
}

// DeleteQuestion removes a question; its choices go with it
func (s *Store) DeleteQuestion(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM question WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrQuestionNotFound
	}

	return nil
}

// ValidText reports whether text fits the 200 character column
func ValidText(text string) bool {
	text = strings.TrimSpace(text)
	return text != "" && len([]rune(text)) <= 200
}
