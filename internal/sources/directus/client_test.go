package directus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientFetchRaw(t *testing.T) {
	var gotPath, gotAuth, gotFields, gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotFields = r.URL.Query().Get("fields")
		gotLimit = r.URL.Query().Get("limit")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id": 1, "event": "opening", "start_time": "2025-06-01T09:00:00", "is_all_day": false},
			{"id": "b2", "event": "relay", "start_time": null, "end_time": "2025-06-01T11:00:00"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-token", "schedules", 5*time.Second)
	rows, err := c.FetchRaw(context.Background())
	if err != nil {
		t.Fatalf("FetchRaw() error: %v", err)
	}

	if gotPath != "/items/schedules" {
		t.Errorf("path = %q, want /items/schedules", gotPath)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("authorization header = %q", gotAuth)
	}
	if gotFields != itemFields {
		t.Errorf("fields query = %q, want %q", gotFields, itemFields)
	}
	if gotLimit != "-1" {
		t.Errorf("limit query = %q, want -1", gotLimit)
	}

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].ID.String() != "1" || rows[0].Event != "opening" {
		t.Errorf("first row = %+v", rows[0])
	}
	if rows[1].ID.String() != "b2" || rows[1].StartTime != nil || rows[1].EndTime == nil {
		t.Errorf("second row = %+v", rows[1])
	}
}

func TestClientFetchRawNoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("unexpected authorization header %q", r.Header.Get("Authorization"))
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "schedules", 5*time.Second)
	rows, err := c.FetchRaw(context.Background())
	if err != nil {
		t.Fatalf("FetchRaw() error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestClientFetchRawServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "permission denied", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad", "schedules", 5*time.Second)
	if _, err := c.FetchRaw(context.Background()); err == nil {
		t.Fatal("expected error on 403 response")
	}
}

func TestClientFetchRawRespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewClient(srv.URL, "", "schedules", 5*time.Second)
	if _, err := c.FetchRaw(ctx); err == nil {
		t.Fatal("expected error when the context deadline expires")
	}
}
