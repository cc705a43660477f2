// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls site.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Public pages (HTML):

	GET  /polls/              - Latest questions
	GET  /polls/{id}/         - Voting form
	GET  /polls/{id}/results/ - Vote counts
	POST /polls/{id}/vote/    - Record a vote

GET / redirects to /polls/.

Admin API (JSON, requires X-Admin-Key, CORS enabled):

	POST   /admin/questions              - Create question
	GET    /admin/questions/{id}         - Question with counts
	DELETE /admin/questions/{id}         - Delete question and choices
	POST   /admin/questions/{id}/choices - Add choice

# Handler Initialization

The router creates handler instances with dependency injection:

	pollHandler := handlers.NewPollHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)
*/
package router
