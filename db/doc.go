// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and creates the schema.

# Engines

Two engines are supported, selected by Dialect:

  - sqlite (modernc.org/sqlite, pure Go, default)
  - postgres (github.com/lib/pq)

	dialect, err := db.ParseDialect(cfg.DatabaseType)
	conn, err := db.Open(dialect, cfg.DatabaseURL)

sqlite connections are limited to one open connection so that in-memory
databases are shared by every query.

# Schema Creation

CreateSchema initializes the messages table:

	if err := db.CreateSchema(conn, dialect); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index.

# Tables

  - messages: id, body, username, created_at

body and username are nullable. created_at defaults to the insert time.

# Placeholders

Queries are written with ? placeholders and rewritten for postgres:

	query := dialect.Rebind("SELECT body FROM messages WHERE id = ?")
*/
package db
