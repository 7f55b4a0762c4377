package contactclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubmitParsesStoredRecord(t *testing.T) {
	var gotBody SubmitRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/contact", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Contact form submitted successfully",
			"data": map[string]any{
				"id":        "2f9d7c44-9a41-4c8e-8a15-3be6f0a0d9e1",
				"name":      gotBody.Name,
				"email":     gotBody.Email,
				"phone":     gotBody.Phone,
				"service":   gotBody.Service,
				"message":   gotBody.Message,
				"createdAt": time.Now().UTC().Format(time.RFC3339Nano),
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	req := SubmitRequest{
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Phone:   "555-0100",
		Service: "standees",
		Message: "Need 5 standees",
	}
	sub, err := c.Submit(context.Background(), req)
	assert.NoError(t, err)

	// Round-trip: stored values match the submitted ones exactly.
	assert.Equal(t, req.Name, sub.Name)
	assert.Equal(t, req.Email, sub.Email)
	assert.Equal(t, req.Phone, sub.Phone)
	assert.Equal(t, req.Service, sub.Service)
	assert.Equal(t, req.Message, sub.Message)
	assert.NotEmpty(t, sub.ID)
	assert.False(t, sub.CreatedAt.IsZero())
}

func TestSubmitServerFaultIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Failed to save your message. Please try again later.",
			"error":   "connection refused",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Submit(context.Background(), SubmitRequest{Name: "Jane"})

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "Failed to save your message. Please try again later.", apiErr.Message)
	assert.Equal(t, "connection refused", apiErr.Detail)
}

func TestSubmitRejectedPayloadIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "invalid payload: Message is required",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Submit(context.Background(), SubmitRequest{})

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestListPreservesServerOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Contact submissions retrieved",
			"data": []map[string]any{
				{"id": "c", "createdAt": "2026-09-01T12:02:00Z"},
				{"id": "b", "createdAt": "2026-09-01T12:01:00Z"},
				{"id": "a", "createdAt": "2026-09-01T12:00:00Z"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	subs, err := c.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, subs, 3)
	assert.Equal(t, "c", subs[0].ID)
	for i := 1; i < len(subs); i++ {
		assert.False(t, subs[i].CreatedAt.After(subs[i-1].CreatedAt))
	}
}

func TestServicesReturnsCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/services", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Service catalog",
			"data": []map[string]string{
				{"id": "backlit-flex", "name": "Backlit Flex"},
				{"id": "consultation", "name": "Consultation"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	services, err := c.Services(context.Background())
	assert.NoError(t, err)
	assert.Len(t, services, 2)
	assert.Equal(t, "backlit-flex", services[0].ID)
}

func TestConnectionRefusedIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse from here on

	c := New(srv.URL, WithTimeout(time.Second))
	_, err := c.Submit(context.Background(), SubmitRequest{})
	assert.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
