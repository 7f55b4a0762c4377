package contactclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okContactServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Contact form submitted successfully",
			"data": map[string]any{
				"id":        "11111111-2222-3333-4444-555555555555",
				"createdAt": time.Now().UTC().Format(time.RFC3339Nano),
			},
		})
	}))
}

func failingContactServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Failed to save your message. Please try again later.",
			"error":   "connection refused",
		})
	}))
}

func waitForState(t *testing.T, f *Form, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if f.State() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("form never reached state %q (still %q)", want, f.State())
}

func TestFormStartsIdle(t *testing.T) {
	f := NewForm(New("http://localhost:0"))
	assert.Equal(t, StateIdle, f.State())
}

func TestFormSuccessResetsFieldsAfterDelay(t *testing.T) {
	srv := okContactServer()
	defer srv.Close()

	f := NewForm(New(srv.URL), WithResetDelay(20*time.Millisecond))
	f.SetFields(Fields{Name: "Jane Doe", Email: "jane@x.com", Phone: "555-0100", Message: "Hi"})

	err := f.Submit(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, StateSuccess, f.State())
	// Fields survive until the reset fires.
	assert.Equal(t, "Jane Doe", f.Fields().Name)

	waitForState(t, f, StateIdle)
	assert.Equal(t, Fields{}, f.Fields())
}

func TestFormErrorAutoRevertsToIdle(t *testing.T) {
	srv := failingContactServer()
	defer srv.Close()

	f := NewForm(New(srv.URL), WithErrorDismissDelay(20*time.Millisecond))
	f.SetFields(Fields{Name: "Jane Doe", Email: "jane@x.com", Phone: "555-0100", Message: "Hi"})

	err := f.Submit(context.Background())
	assert.Error(t, err)
	assert.Equal(t, StateError, f.State())
	// A failed submit does not discard what the user typed.
	assert.Equal(t, "Jane Doe", f.Fields().Name)

	waitForState(t, f, StateIdle)
	assert.Equal(t, "Jane Doe", f.Fields().Name)
}

func TestFormDismissError(t *testing.T) {
	srv := failingContactServer()
	defer srv.Close()

	f := NewForm(New(srv.URL), WithErrorDismissDelay(time.Hour))
	assert.Error(t, f.Submit(context.Background()))
	assert.Equal(t, StateError, f.State())

	f.Dismiss()
	assert.Equal(t, StateIdle, f.State())
}

func TestFormRejectsConcurrentSubmit(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{"id": "x"}})
	}))
	defer srv.Close()
	defer close(release)

	f := NewForm(New(srv.URL))

	firstDone := make(chan error, 1)
	go func() { firstDone <- f.Submit(context.Background()) }()

	waitForState(t, f, StateSubmitting)
	assert.ErrorIs(t, f.Submit(context.Background()), ErrSubmitInFlight)

	release <- struct{}{}
	assert.NoError(t, <-firstDone)
}

func TestFormStateTransitionsAreObserved(t *testing.T) {
	srv := okContactServer()
	defer srv.Close()

	var mu sync.Mutex
	var seen []State
	f := NewForm(New(srv.URL),
		WithResetDelay(10*time.Millisecond),
		WithOnChange(func(s State) {
			mu.Lock()
			seen = append(seen, s)
			mu.Unlock()
		}))

	assert.NoError(t, f.Submit(context.Background()))
	waitForState(t, f, StateIdle)

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, len(seen), 3)
	assert.Equal(t, StateSubmitting, seen[0])
	assert.Equal(t, StateSuccess, seen[1])
	assert.Equal(t, StateIdle, seen[len(seen)-1])
}
