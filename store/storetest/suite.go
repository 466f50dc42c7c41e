// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storetest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-post/store"
)

func strPtr(s string) *string { return &s }

// MessageStoreSuite runs the behaviour every MessageStore must share.
// newStore must return an empty store for each call.
func MessageStoreSuite(t *testing.T, newStore func(t *testing.T) store.MessageStore) {
	t.Helper()

	t.Run("list empty", func(t *testing.T) {
		req := require.New(t)
		s := newStore(t)

		messages, err := s.List(t.Context())
		req.NoError(err)
		req.NotNil(messages)
		req.Empty(messages)
	})

	t.Run("create assigns id and created_at", func(t *testing.T) {
		req := require.New(t)
		s := newStore(t)

		msg, err := s.Create(t.Context(), strPtr("Hello 👋"), strPtr("Liza"))
		req.NoError(err)
		req.NotZero(msg.ID)
		req.False(msg.CreatedAt.IsZero())
		req.Equal("Hello 👋", *msg.Body)
		req.Equal("Liza", *msg.Username)

		fetched, err := s.Get(t.Context(), msg.ID)
		req.NoError(err)
		req.Equal(msg.ID, fetched.ID)
		req.Equal("Hello 👋", *fetched.Body)
		req.Equal("Liza", *fetched.Username)
		req.True(msg.CreatedAt.Equal(fetched.CreatedAt), "created_at %v != %v", msg.CreatedAt, fetched.CreatedAt)
	})

	t.Run("create with null fields", func(t *testing.T) {
		req := require.New(t)
		s := newStore(t)

		msg, err := s.Create(t.Context(), nil, nil)
		req.NoError(err)

		fetched, err := s.Get(t.Context(), msg.ID)
		req.NoError(err)
		req.Nil(fetched.Body)
		req.Nil(fetched.Username)
	})

	t.Run("ids are unique", func(t *testing.T) {
		req := require.New(t)
		s := newStore(t)

		seen := map[int64]bool{}
		for i := 0; i < 5; i++ {
			msg, err := s.Create(t.Context(), strPtr("msg"), strPtr("Liza"))
			req.NoError(err)
			req.False(seen[msg.ID], "duplicate id %d", msg.ID)
			seen[msg.ID] = true
		}
	})

	t.Run("list is ordered by created_at", func(t *testing.T) {
		req := require.New(t)
		s := newStore(t)

		bodies := []string{"first", "second", "third"}
		for _, body := range bodies {
			_, err := s.Create(t.Context(), strPtr(body), strPtr("Liza"))
			req.NoError(err)
		}

		messages, err := s.List(t.Context())
		req.NoError(err)
		req.Len(messages, len(bodies))
		for i, msg := range messages {
			req.Equal(bodies[i], *msg.Body)
			if i > 0 {
				req.False(msg.CreatedAt.Before(messages[i-1].CreatedAt))
			}
		}
	})

	t.Run("get missing", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Get(t.Context(), 999999)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update body", func(t *testing.T) {
		req := require.New(t)
		s := newStore(t)

		created, err := s.Create(t.Context(), strPtr("Hello 👋"), strPtr("Liza"))
		req.NoError(err)

		updated, err := s.UpdateBody(t.Context(), created.ID, strPtr("Goodbye 👋"))
		req.NoError(err)
		req.Equal(created.ID, updated.ID)
		req.Equal("Goodbye 👋", *updated.Body)
		req.Equal("Liza", *updated.Username)
		req.True(created.CreatedAt.Equal(updated.CreatedAt))

		fetched, err := s.Get(t.Context(), created.ID)
		req.NoError(err)
		req.Equal("Goodbye 👋", *fetched.Body)
	})

	t.Run("update with nil body keeps body", func(t *testing.T) {
		req := require.New(t)
		s := newStore(t)

		created, err := s.Create(t.Context(), strPtr("Hello 👋"), strPtr("Liza"))
		req.NoError(err)

		updated, err := s.UpdateBody(t.Context(), created.ID, nil)
		req.NoError(err)
		req.Equal("Hello 👋", *updated.Body)

		fetched, err := s.Get(t.Context(), created.ID)
		req.NoError(err)
		req.Equal("Hello 👋", *fetched.Body)
	})

	t.Run("update missing", func(t *testing.T) {
		s := newStore(t)

		_, err := s.UpdateBody(t.Context(), 999999, strPtr("Goodbye 👋"))
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		req := require.New(t)
		s := newStore(t)

		created, err := s.Create(t.Context(), strPtr("Hello 👋"), strPtr("Liza"))
		req.NoError(err)

		req.NoError(s.Delete(t.Context(), created.ID))

		_, err = s.Get(t.Context(), created.ID)
		req.ErrorIs(err, store.ErrNotFound)

		// Second delete of the same id
		req.ErrorIs(s.Delete(t.Context(), created.ID), store.ErrNotFound)
	})

	t.Run("delete missing", func(t *testing.T) {
		s := newStore(t)

		require.ErrorIs(t, s.Delete(t.Context(), 999999), store.ErrNotFound)
	})

	t.Run("delete leaves other rows", func(t *testing.T) {
		req := require.New(t)
		s := newStore(t)

		keep, err := s.Create(t.Context(), strPtr("keep"), strPtr("Liza"))
		req.NoError(err)
		drop, err := s.Create(t.Context(), strPtr("drop"), strPtr("Liza"))
		req.NoError(err)

		req.NoError(s.Delete(t.Context(), drop.ID))

		messages, err := s.List(t.Context())
		req.NoError(err)
		req.Len(messages, 1)
		req.Equal(keep.ID, messages[0].ID)
	})
}
