// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persistence boundary for messages.

MessageStore is the interface handlers depend on. SQLStore implements it
over database/sql for both sqlite and postgres:

	s := store.NewSQLStore(conn, db.SQLite)
	msg, err := s.Create(ctx, &body, &username)

Lookups of a missing id return ErrNotFound. UpdateBody reads and writes
inside one transaction. Every MessageStore implementation should pass
storetest.MessageStoreSuite.
*/
package store
