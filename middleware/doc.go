// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Every request gets an X-Request-ID: the client's value when
sent, otherwise a fresh UUID. The ID is echoed in the response header and
attached to both log lines.

# CORS Middleware

The admin API accepts cross-origin requests:

	mux.Handle("POST /admin/questions", middleware.CORS(handler))

Allows methods GET, POST, DELETE, OPTIONS with headers
Content-Type, X-Admin-Key, X-Request-ID.

# Response Helpers

JSON for the admin API:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Plain text errors for the HTML pages:

	middleware.HTMLError(w, http.StatusNotFound)

Parse JSON request bodies:

	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Hashed with auth.HashIP before it reaches the vote log.
*/
package middleware
