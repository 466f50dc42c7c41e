// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-post/middleware"
	"github.com/danielhkuo/quickly-post/models"
	"github.com/danielhkuo/quickly-post/store"
)

type MessageHandler struct {
	store store.MessageStore
}

func NewMessageHandler(s store.MessageStore) *MessageHandler {
	return &MessageHandler{store: s}
}

// ListMessages handles GET /messages
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.store.List(r.Context())
	if err != nil {
		slog.Error("failed to list messages", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgDatabaseError)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ToResponses(messages))
}

// CreateMessage handles POST /messages
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMessageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidJSON)
		return
	}

	msg, err := h.store.Create(r.Context(), req.Body, req.Username)
	if err != nil {
		slog.Error("failed to create message", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgDatabaseError)
		return
	}

	slog.Info("message created", "message_id", msg.ID)

	middleware.JSONResponse(w, http.StatusCreated, msg.ToResponse())
}

// UpdateMessage handles PATCH /messages/{id}
// Only body is updated, and only when the request supplies a non-null value
func (h *MessageHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := messageID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, models.MsgNotFound)
		return
	}

	var req models.UpdateMessageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidJSON)
		return
	}

	msg, err := h.store.UpdateBody(r.Context(), id, req.Body)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, models.MsgNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to update message", "message_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgDatabaseError)
		return
	}

	slog.Info("message updated", "message_id", id, "body_changed", req.Body != nil)

	middleware.JSONResponse(w, http.StatusOK, msg.ToResponse())
}

// DeleteMessage handles DELETE /messages/{id}
func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := messageID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, models.MsgNotFound)
		return
	}

	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, models.MsgNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to delete message", "message_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgDatabaseError)
		return
	}

	slog.Info("message deleted", "message_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// messageID reads the {id} path value. Only unsigned decimal digits match a message.
func messageID(r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	if raw == "" {
		return 0, false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
