// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-post/handlers"
	"github.com/danielhkuo/quickly-post/middleware"
	"github.com/danielhkuo/quickly-post/store"
)

func NewRouter(s store.MessageStore) *http.ServeMux {
	mux := http.NewServeMux()

	messageHandler := handlers.NewMessageHandler(s)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Messages
	mux.HandleFunc("GET /messages", middleware.WithLogging(messageHandler.ListMessages))
	mux.HandleFunc("POST /messages", middleware.WithLogging(messageHandler.CreateMessage))
	mux.HandleFunc("PATCH /messages/{id}", middleware.WithLogging(messageHandler.UpdateMessage))
	mux.HandleFunc("DELETE /messages/{id}", middleware.WithLogging(messageHandler.DeleteMessage))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-post API v1"))
	})

	return mux
}
