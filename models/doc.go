// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateMessageRequest: body, username (both optional)
  - UpdateMessageRequest: body (optional)

Optional fields are pointers so a missing key is an explicit nil rather
than an empty string.

# Response Types

  - MessageResponse: id, body, username, created_at
  - ErrorResponse: error

# Domain Types

Message is the single persisted entity. Body and Username may be nil;
ID and CreatedAt are always set once stored.

	resp := msg.ToResponse()

created_at is rendered in UTC using TimestampLayout:

	{"id": 1, "body": "Hello 👋", "username": "Liza", "created_at": "2025-01-02 15:04:05"}
*/
package models
