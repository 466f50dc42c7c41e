// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Post API.

# Handler Types

MessageHandler serves the messages resource. It is created with the
store it reads and writes:

	messageHandler := handlers.NewMessageHandler(store.NewSQLStore(conn, dialect))

Any store.MessageStore works, which keeps handlers free of global
database state.

# Routes

	GET    /messages      → ListMessages   (200, oldest first)
	POST   /messages      → CreateMessage  (201)
	PATCH  /messages/{id} → UpdateMessage  (200, body only)
	DELETE /messages/{id} → DeleteMessage  (204)

# Errors

A missing message is reported as 404 with the envelope

	{"error": "Message not found"}

Malformed JSON is 400 and storage failures are 500, both using the same
envelope shape.
*/
package handlers
