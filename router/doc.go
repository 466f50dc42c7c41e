// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Post API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store.NewSQLStore(conn, dialect))

# Endpoints

Health:

	GET /health

Messages:

	GET    /messages      - List messages, oldest first
	POST   /messages      - Create message
	PATCH  /messages/{id} - Update message body
	DELETE /messages/{id} - Delete message

Message routes are wrapped with middleware.WithLogging. Other methods on
these paths get 405 from ServeMux.
*/
package router
