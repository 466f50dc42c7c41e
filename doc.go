// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Post API server.

Quickly Post is a small message board: authored text posts that can be
listed, created, edited, and deleted over a JSON HTTP API.

# Starting the Server

With no configuration the server uses a local sqlite file on port 5555:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 5555 -t sqlite -d "file:app.db"

Variables may also be placed in a .env file next to the binary.

# Configuration

  - PORT (-p): Server port (default: 5555)
  - DATABASE_URL (-d): Connection string (default: file:app.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

  - handlers: HTTP request handlers for messages
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response/domain types
  - store: MessageStore interface and SQL implementation
  - db: Connection, dialects, schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
