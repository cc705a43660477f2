// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Polls web server.

Quickly Polls is a small polls site: visitors browse the latest published
questions, pick one choice, and see the running tallies. Questions and
choices are managed through a key-protected JSON admin API.

# Starting the Server

Configuration comes from CLI flags, environment variables, or a .env file
in the working directory:

	DATABASE_URL=polls.db ADMIN_KEY=secret go run .

Or with flags against PostgreSQL:

	go run . -p 3318 -t postgres -d "postgres://..." --admin-key secret

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file path or PostgreSQL connection string
  - ADMIN_KEY (--admin-key): Shared secret for the admin API

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - LISTING_LIMIT (--listing-limit): Questions on the index page (default: 5)

# Architecture

  - handlers: Poll pages, vote recording, admin API
  - store: Queries and the atomic vote increment
  - models: Question/Choice types and visibility rules
  - views: Embedded HTML templates
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request logging, JSON helpers
  - auth: Admin key validation
  - db: Connection setup and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
