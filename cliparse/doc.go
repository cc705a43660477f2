// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: sqlite file DSN or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - AdminKey: Shared secret for the admin API (required)
  - ListingLimit: Questions shown on the index page (default: 5)

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	--admin-key      Admin API key
	--listing-limit  Index page size

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	ADMIN_KEY     → --admin-key
	LISTING_LIMIT → --listing-limit

CLI flags take precedence over environment variables. main loads a .env
file into the environment before ParseFlags runs.
*/
package cliparse
