// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-post/models"
)

func TestWithLogging(t *testing.T) {
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	wrappedHandler := WithLogging(testHandler)

	req := httptest.NewRequest("GET", "/messages", nil)
	w := httptest.NewRecorder()

	wrappedHandler(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}
}

func TestWithLogging_PreservesResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "[]"},
		{"Created", http.StatusCreated, `{"id":1}`},
		{"NoContent", http.StatusNoContent, ""},
		{"BadRequest", http.StatusBadRequest, `{"error":"Invalid JSON"}`},
		{"NotFound", http.StatusNotFound, `{"error":"Message not found"}`},
		{"InternalError", http.StatusInternalServerError, `{"error":"Database error"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/messages", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestWithLogging_RequestID(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/messages", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		id := w.Header().Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("Expected generated UUID request id, got '%s'", id)
		}
	})

	t.Run("echoed when present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/messages", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()

		handler(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Errorf("Expected request id 'abc-123', got '%s'", got)
		}
	})
}

func TestStatusRecorder(t *testing.T) {
	w := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	rec.WriteHeader(http.StatusCreated)
	rec.Write([]byte("hello"))
	rec.Write([]byte(" world"))

	if rec.status != http.StatusCreated {
		t.Errorf("Expected recorded status 201, got %d", rec.status)
	}
	if rec.size != 11 {
		t.Errorf("Expected recorded size 11, got %d", rec.size)
	}
	if w.Body.String() != "hello world" {
		t.Errorf("Expected body passed through, got '%s'", w.Body.String())
	}
	if rec.Unwrap() != w {
		t.Error("Expected Unwrap to return the wrapped writer")
	}
}

func TestWithLogging_ResponseController(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if err := http.NewResponseController(w).Flush(); err != nil {
			t.Errorf("Expected flush through logging wrapper, got %v", err)
		}
	})

	req := httptest.NewRequest("GET", "/messages", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if !w.Flushed {
		t.Error("Expected underlying recorder to be flushed")
	}
}

func TestJSONResponse(t *testing.T) {
	body := "Hello 👋"
	username := "Liza"

	testCases := []struct {
		name       string
		statusCode int
		data       interface{}
		expected   string
	}{
		{
			name:       "simple struct",
			statusCode: http.StatusOK,
			data:       map[string]string{"message": "hello"},
			expected:   `{"message":"hello"}`,
		},
		{
			name:       "created message",
			statusCode: http.StatusCreated,
			data: models.MessageResponse{
				ID:        1,
				Body:      &body,
				Username:  &username,
				CreatedAt: "2025-01-02 03:04:05",
			},
			expected: `{"id":1,"body":"Hello 👋","username":"Liza","created_at":"2025-01-02 03:04:05"}`,
		},
		{
			name:       "error response",
			statusCode: http.StatusNotFound,
			data:       models.ErrorResponse{Error: "Message not found"},
			expected:   `{"error":"Message not found"}`,
		},
		{
			name:       "empty array",
			statusCode: http.StatusOK,
			data:       []models.MessageResponse{},
			expected:   `[]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			contentType := w.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
			}

			// Trim newline added by Encode
			got := strings.TrimSpace(w.Body.String())
			if got != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, got)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		message    string
	}{
		{"bad request", http.StatusBadRequest, "Invalid JSON"},
		{"not found", http.StatusNotFound, "Message not found"},
		{"internal error", http.StatusInternalServerError, "Database error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Header().Get("Content-Type") != "application/json" {
				t.Error("Expected Content-Type 'application/json'")
			}

			// The envelope has exactly one key
			var raw map[string]interface{}
			if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if len(raw) != 1 {
				t.Errorf("Expected single-key envelope, got %v", raw)
			}
			if raw["error"] != tc.message {
				t.Errorf("Expected error '%s', got '%v'", tc.message, raw["error"])
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		body := `{"body":"Hello 👋","username":"Liza"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))

		var parsed models.CreateMessageRequest
		err := ParseJSONBody(req, &parsed)

		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Body == nil || *parsed.Body != "Hello 👋" {
			t.Errorf("Expected body 'Hello 👋', got %v", parsed.Body)
		}
		if parsed.Username == nil || *parsed.Username != "Liza" {
			t.Errorf("Expected username 'Liza', got %v", parsed.Username)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{invalid json}`))

		var parsed models.CreateMessageRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for invalid JSON")
		}
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))

		var parsed models.CreateMessageRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for empty body")
		}
	})

	t.Run("explicit null field", func(t *testing.T) {
		req := httptest.NewRequest("PATCH", "/", strings.NewReader(`{"body":null}`))

		var parsed models.UpdateMessageRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if parsed.Body != nil {
			t.Error("Expected nil body for null JSON field")
		}
	})

	t.Run("extra fields ignored", func(t *testing.T) {
		body := `{"body":"Goodbye 👋","username":"ignored on update"}`
		req := httptest.NewRequest("PATCH", "/", strings.NewReader(body))

		var parsed models.UpdateMessageRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Body == nil || *parsed.Body != "Goodbye 👋" {
			t.Errorf("Expected body 'Goodbye 👋', got %v", parsed.Body)
		}
	})

	rejected := []struct {
		name string
		body string
	}{
		{"trailing garbage", `{"body":"x","username":"y"} garbage`},
		{"second object", `{"body":"x"}{"body":"z"}`},
		{"top-level null", `null`},
		{"padded top-level null", " null\n"},
		{"invalid UTF-8", "{\"body\":\"\xff\xfe\",\"username\":\"y\"}"},
		{"array", `[]`},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tc.body))

			var parsed models.CreateMessageRequest
			if err := ParseJSONBody(req, &parsed); err == nil {
				t.Errorf("Expected error for body %q, got parsed %+v", tc.body, parsed)
			}
		})
	}

	t.Run("trailing whitespace allowed", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader("{\"body\":\"x\"}\n\t "))

		var parsed models.CreateMessageRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Body == nil || *parsed.Body != "x" {
			t.Errorf("Expected body 'x', got %v", parsed.Body)
		}
	})

	t.Run("body is consumed after parsing", func(t *testing.T) {
		bodyReader := io.NopCloser(bytes.NewReader([]byte(`{"body":"x"}`)))
		req := httptest.NewRequest("POST", "/", bodyReader)

		var parsed models.CreateMessageRequest
		_ = ParseJSONBody(req, &parsed)

		remaining, _ := io.ReadAll(req.Body)
		if len(remaining) > 0 {
			t.Error("Expected body to be consumed/closed")
		}
	})
}

func TestCORS(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})

	corsHandler := CORS(nextHandler)

	t.Run("preflight OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/messages/1", nil)
		req.Header.Set("Origin", "http://localhost:4000")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if w.Body.String() != "" {
			t.Errorf("Expected empty body for preflight, got '%s'", w.Body.String())
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:4000" {
			t.Error("Expected Access-Control-Allow-Origin to match request origin")
		}
	})

	t.Run("regular request with origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/messages", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Body.String() != "handled" {
			t.Error("Expected next handler to be called")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "https://example.com" {
			t.Error("Expected Access-Control-Allow-Origin to reflect request origin")
		}
	})

	t.Run("request without origin defaults to wildcard", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/messages", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected Access-Control-Allow-Origin to default to '*'")
		}
	})

	t.Run("allows message methods", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/messages/1", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		allowedMethods := w.Header().Get("Access-Control-Allow-Methods")
		for _, method := range []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"} {
			if !strings.Contains(allowedMethods, method) {
				t.Errorf("Expected %s in allowed methods", method)
			}
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{
			name:       "X-Forwarded-For single IP",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "X-Forwarded-For chained IPs",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18, 150.172.238.178"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "203.0.113.195",
		},
		{
			name:       "X-Real-IP takes precedence over RemoteAddr",
			headers:    map[string]string{"X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "203.0.113.50",
		},
		{
			name:       "X-Forwarded-For takes precedence over X-Real-IP",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100", "X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "RemoteAddr with port",
			remoteAddr: "192.168.1.50:54321",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "RemoteAddr without port",
			remoteAddr: "192.168.1.50",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "IPv6 RemoteAddr with port",
			remoteAddr: "[::1]:12345",
			expectedIP: "::1",
		},
		{
			name:       "IPv6 in X-Forwarded-For",
			headers:    map[string]string{"X-Forwarded-For": "2001:db8::1"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "2001:db8::1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr

			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			result := GetClientIP(req)

			if result != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, result)
			}
		})
	}
}
