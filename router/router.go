// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-polls/cliparse"
	"github.com/danielhkuo/quickly-polls/handlers"
	"github.com/danielhkuo/quickly-polls/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public pages: list, detail, results, vote
	mux.HandleFunc("GET /polls/{$}", middleware.WithLogging(pollHandler.Index))
	mux.HandleFunc("GET /polls/{id}/{$}", middleware.WithLogging(pollHandler.Detail))
	mux.HandleFunc("GET /polls/{id}/results/{$}", middleware.WithLogging(pollHandler.Results))
	mux.HandleFunc("POST /polls/{id}/vote/{$}", middleware.WithLogging(pollHandler.Vote))

	// Admin API
	admin := func(h http.HandlerFunc) http.Handler {
		return middleware.CORS(middleware.WithLogging(h))
	}
	mux.Handle("POST /admin/questions", admin(adminHandler.CreateQuestion))
	mux.Handle("GET /admin/questions/{id}", admin(adminHandler.GetQuestion))
	mux.Handle("DELETE /admin/questions/{id}", admin(adminHandler.DeleteQuestion))
	mux.Handle("POST /admin/questions/{id}/choices", admin(adminHandler.AddChoice))
	mux.Handle("OPTIONS /admin/", middleware.CORS(http.NotFoundHandler()))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/polls/", http.StatusFound)
	})

	return mux
}
