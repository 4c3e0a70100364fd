package intake

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboardly/pkg/leadform"
	"onboardly/pkg/models"
)

var validLead = models.LeadForm{
	Name:  "Alex Johnson",
	Email: "alex@startup.com",
	Phone: "(123) 456-7890",
}

func TestSubmitLead(t *testing.T) {
	t.Run("Posts JSON body", func(t *testing.T) {
		var got models.LeadForm
		var method, contentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method = r.Method
			contentType = r.Header.Get("Content-Type")
			json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		err := client.SubmitLead(context.Background(), validLead)
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, method)
		assert.Contains(t, contentType, "application/json")
		assert.Equal(t, validLead, got)
	})

	t.Run("Any 2xx is success", func(t *testing.T) {
		for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			err := NewClient(server.URL, nil).SubmitLead(context.Background(), validLead)
			server.Close()
			assert.NoError(t, err, "status %d", status)
		}
	})

	t.Run("Rejection carries endpoint message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Duplicate lead"}`))
		}))
		defer server.Close()

		err := NewClient(server.URL, nil).SubmitLead(context.Background(), validLead)
		var subErr *leadform.SubmissionError
		require.True(t, errors.As(err, &subErr))
		assert.Equal(t, "Duplicate lead", subErr.Message)
		assert.Equal(t, http.StatusBadRequest, subErr.StatusCode)
	})

	t.Run("Rejection without message falls back", func(t *testing.T) {
		bodies := []string{``, `not json`, `{"error":"Missing required fields"}`, `{"message":""}`}
		for _, body := range bodies {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(body))
			}))
			err := NewClient(server.URL, nil).SubmitLead(context.Background(), validLead)
			server.Close()

			var subErr *leadform.SubmissionError
			require.True(t, errors.As(err, &subErr), "body %q", body)
			assert.Equal(t, leadform.DefaultRejectedMessage, subErr.Message, "body %q", body)
			assert.Equal(t, http.StatusInternalServerError, subErr.StatusCode)
		}
	})

	t.Run("Network failure uses generic message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		err := NewClient(url, nil).SubmitLead(context.Background(), validLead)
		var subErr *leadform.SubmissionError
		require.True(t, errors.As(err, &subErr))
		assert.Equal(t, leadform.DefaultNetworkMessage, subErr.Message)
		assert.Zero(t, subErr.StatusCode)
		assert.NotNil(t, subErr.Unwrap())
	})

	t.Run("One request per call", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		NewClient(server.URL, nil).SubmitLead(context.Background(), validLead)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("Cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := NewClient(server.URL, nil).SubmitLead(ctx, validLead)
		var subErr *leadform.SubmissionError
		require.True(t, errors.As(err, &subErr))
		assert.Equal(t, leadform.DefaultNetworkMessage, subErr.Message)
	})
}
