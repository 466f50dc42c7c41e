// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5555)
  - DatabaseURL: Database connection string (default: file:app.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - Dialect: DatabaseType validated by db.ParseDialect
  - EnvFile: Dotenv file to load (default: .env)

# CLI Flags

	-p         Server port
	-d         Database URL
	-t         Database type
	-env-file  Dotenv file

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t

CLI flags take precedence over environment variables. Variables from the
env file are loaded before the fallback runs but never override variables
already present in the process environment. A missing env file is ignored.

# Validation

ParseFlags returns an error if PORT is not a number or the database type
is not one of sqlite or postgres.
*/
package cliparse
