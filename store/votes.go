// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// RecordVote adds one vote to choiceID, which must belong to questionID,
// and returns the counter value written by that increment.
//
// The increment is a single UPDATE evaluated by the database, so concurrent
// votes from any number of processes are all counted. RecordVote is not
// idempotent: calling it again after a success counts a second vote.
func (s *Store) RecordVote(ctx context.Context, questionID int64, choiceID *int64) (int64, error) {
	if choiceID == nil {
		return 0, ErrChoiceNotSelected
	}

	var votes int64
	err := s.db.QueryRowContext(ctx, `
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
		RETURNING votes
	`, *choiceID, questionID).Scan(&votes)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrChoiceNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to record vote: %w", err)
	}

	return votes, nil
}

// VoteCount re-reads the stored counter for a choice
func (s *Store) VoteCount(ctx context.Context, choiceID int64) (int64, error) {
	var votes int64
	err := s.db.QueryRowContext(ctx, `SELECT votes FROM choice WHERE id = $1`, choiceID).Scan(&votes)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrChoiceNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query vote count: %w", err)
	}

	return votes, nil
}
