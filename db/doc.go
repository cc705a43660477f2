// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open picks the driver from the configured database type:

	conn, err := db.Open(cfg)

  - sqlite: modernc.org/sqlite (pure Go, no cgo), one open connection,
    foreign keys enabled, 5s busy timeout
  - postgres: github.com/lib/pq

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: question text and publication date
  - choice: answer text and vote counter

# Relationships

	question 1──* choice

choice.question_id uses ON DELETE CASCADE. choice.votes carries
CHECK (votes >= 0).

# Indexes

  - question.pub_date (listing range query)
  - choice.question_id
*/
package db
