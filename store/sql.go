// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/quickly-post/db"
	"github.com/danielhkuo/quickly-post/models"
)

type SQLStore struct {
	conn    *sql.DB
	dialect db.Dialect
}

func NewSQLStore(conn *sql.DB, dialect db.Dialect) *SQLStore {
	return &SQLStore{conn: conn, dialect: dialect}
}

// rowQuerier is satisfied by both *sql.DB and *sql.Tx
type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *SQLStore) List(ctx context.Context) ([]models.Message, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, body, username, created_at
		FROM messages
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(&msg.ID, &msg.Body, &msg.Username, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}

func (s *SQLStore) Create(ctx context.Context, body, username *string) (models.Message, error) {
	msg := models.Message{
		Body:      body,
		Username:  username,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	err := s.conn.QueryRowContext(ctx, s.dialect.Rebind(`
		INSERT INTO messages (body, username, created_at)
		VALUES (?, ?, ?)
		RETURNING id
	`), body, username, msg.CreatedAt).Scan(&msg.ID)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to insert message: %w", err)
	}

	return msg, nil
}

func (s *SQLStore) Get(ctx context.Context, id int64) (models.Message, error) {
	return s.get(ctx, s.conn, id)
}

func (s *SQLStore) UpdateBody(ctx context.Context, id int64, body *string) (models.Message, error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	msg, err := s.get(ctx, tx, id)
	if err != nil {
		return models.Message{}, err
	}

	if body != nil {
		_, err = tx.ExecContext(ctx, s.dialect.Rebind(`
			UPDATE messages SET body = ? WHERE id = ?
		`), *body, id)
		if err != nil {
			return models.Message{}, fmt.Errorf("failed to update message: %w", err)
		}
		msg.Body = body
	}

	if err := tx.Commit(); err != nil {
		return models.Message{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return msg, nil
}

func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	result, err := s.conn.ExecContext(ctx, s.dialect.Rebind(`
		DELETE FROM messages WHERE id = ?
	`), id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *SQLStore) get(ctx context.Context, q rowQuerier, id int64) (models.Message, error) {
	var msg models.Message
	err := q.QueryRowContext(ctx, s.dialect.Rebind(`
		SELECT id, body, username, created_at
		FROM messages
		WHERE id = ?
	`), id).Scan(&msg.ID, &msg.Body, &msg.Username, &msg.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Message{}, ErrNotFound
	}
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to query message: %w", err)
	}

	return msg, nil
}
