// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// RecentWindow is how far back a question still counts as recently published
const RecentWindow = 24 * time.Hour

// Domain types

type Question struct {
	ID      int64     `json:"id"`
	Text    string    `json:"question_text"`
	PubDate time.Time `json:"pub_date"`
	Choices []Choice  `json:"choices"`
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	Text       string `json:"choice_text"`
	Votes      int64  `json:"votes"`
}

func (q Question) String() string {
	return q.Text
}

func (c Choice) String() string {
	return c.Text
}

// Request types

type CreateQuestionRequest struct {
	Text    string     `json:"question_text"`
	PubDate *time.Time `json:"pub_date,omitempty"` // defaults to now
}

type AddChoiceRequest struct {
	Text string `json:"choice_text"`
}

// Response types

type CreateQuestionResponse struct {
	QuestionID int64 `json:"question_id"`
}

type AddChoiceResponse struct {
	ChoiceID int64 `json:"choice_id"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
