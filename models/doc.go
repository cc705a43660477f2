// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types and the publication-window rules.

# Domain Types

  - Question: question text and publication date, owns its choices
  - Choice: answer text and vote counter

# Visibility

All rules take the current time explicitly:

	q.WasPublishedRecently(now) // now-24h < pub_date <= now
	q.IsVisibleInListing(now)   // pub_date <= now and at least one choice
	q.IsAccessibleDetail(now)   // pub_date <= now

Listing visibility is stricter than detail access: a question with no
choices is hidden from the index page but its detail and results pages
still resolve.

FilterListing applies IsVisibleInListing, orders by publication date
descending (ties by ID) and truncates:

	latest := models.FilterListing(questions, now, 5)

# Request and Response Types

Types for the admin JSON API:

  - CreateQuestionRequest: question_text, optional pub_date
  - AddChoiceRequest: choice_text
  - CreateQuestionResponse: question_id
  - AddChoiceResponse: choice_id
  - ErrorResponse: error, message
*/
package models
