// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the polls site.

# Handler Types

Each handler is a struct with database and config dependencies:

  - PollHandler: the public pages (list, detail, results, vote)
  - AdminHandler: question and choice management (JSON)

Handlers are created via constructor functions that accept *sql.DB and Config:

	pollHandler := handlers.NewPollHandler(db, cfg)

Both read the current time through an injected clock so the publication
rules can be tested at fixed instants.

# Public Pages

	GET  /polls/              → Index   (latest questions, newest first)
	GET  /polls/{id}/         → Detail  (voting form)
	GET  /polls/{id}/results/ → Results (vote counts)
	POST /polls/{id}/vote/    → Vote    (redirects to results)

Detail, Results and Vote answer 404 for unknown questions and questions
whose pub_date is in the future. The index additionally hides questions
without choices.

A vote without a valid choice redisplays the detail page with
"You didn't select a choice." and changes no counter. A successful vote
redirects (302) to the results page.

# Admin API

	POST   /admin/questions               → CreateQuestion
	POST   /admin/questions/{id}/choices  → AddChoice
	GET    /admin/questions/{id}          → GetQuestion
	DELETE /admin/questions/{id}          → DeleteQuestion

Admin operations require the X-Admin-Key header.
*/
package handlers
