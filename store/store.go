// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/danielhkuo/quickly-post/models"
)

// ErrNotFound is returned when no message has the requested id
var ErrNotFound = errors.New("message not found")

// MessageStore is the persistence boundary for messages.
type MessageStore interface {
	// List returns every message, oldest first.
	List(ctx context.Context) ([]models.Message, error)
	Create(ctx context.Context, body, username *string) (models.Message, error)
	Get(ctx context.Context, id int64) (models.Message, error)
	// UpdateBody overwrites the body when body is non-nil and returns the
	// current row either way.
	UpdateBody(ctx context.Context, id int64, body *string) (models.Message, error)
	Delete(ctx context.Context, id int64) error
}
