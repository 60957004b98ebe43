package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// --- Helpers ---

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL)
	return client, server
}

// --- Tests ---

func TestClient_Profile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
				t.Errorf("expected bearer header, got %q", got)
			}
			json.NewEncoder(w).Encode(Identity{ID: "u1", DisplayName: "Ada", Email: "ada@example.com"})
		}))
		defer server.Close()

		identity, err := client.Profile(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("Profile() returned an unexpected error: %v", err)
		}
		if identity.ID != "u1" || identity.Email != "ada@example.com" {
			t.Errorf("unexpected identity: %+v", identity)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		_, err := client.Profile(context.Background(), "expired")
		if err == nil {
			t.Fatal("Profile() expected an error but got none")
		}
		if !IsForbidden(err) {
			t.Errorf("expected IsForbidden, got %v", err)
		}
	})
}

func TestClient_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["email"] != "ada@example.com" {
				t.Errorf("unexpected login payload: %v", body)
			}
			json.NewEncoder(w).Encode(map[string]string{"token": "tok-9"})
		}))
		defer server.Close()

		token, err := client.Login(context.Background(), "ada@example.com", "hunter2")
		if err != nil {
			t.Fatalf("Login() returned an unexpected error: %v", err)
		}
		if token != "tok-9" {
			t.Errorf("expected token 'tok-9', got %q", token)
		}
	})

	t.Run("server message surfaces", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "wrong password"})
		}))
		defer server.Close()

		_, err := client.Login(context.Background(), "ada@example.com", "nope")
		if err == nil {
			t.Fatal("Login() expected an error but got none")
		}
		if got := UserMessage(err); got != "wrong password" {
			t.Errorf("expected server message, got %q", got)
		}
	})

	t.Run("empty token rejected", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer server.Close()

		if _, err := client.Login(context.Background(), "a@b.co", "x"); err == nil {
			t.Error("expected error for token-less response")
		}
	})
}

func TestClient_Slots(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pod_id") != "pod-1" || r.URL.Query().Get("date") != "2026-09-01" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]Slot{
			{SlotID: "s1", StartTime: "09:00", EndTime: "10:00", UnitPrice: 50000, IsAvailable: true},
			{SlotID: "s2", StartTime: "10:00", EndTime: "11:00", UnitPrice: 50000, IsAvailable: false},
		})
	}))
	defer server.Close()

	slots, err := client.Slots(context.Background(), "pod-1", "2026-09-01")
	if err != nil {
		t.Fatalf("Slots() returned an unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[1].IsAvailable {
		t.Error("expected second slot to be unavailable")
	}
}

func TestClient_NotFound(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := client.Store(context.Background(), "missing")
	if !IsNotFound(err) {
		t.Errorf("expected IsNotFound, got %v", err)
	}
}

func TestBooking_TotalPaid(t *testing.T) {
	booking := Booking{Payments: []Payment{
		{ID: "p1", Amount: 50000},
		{ID: "p2", Amount: 30000},
		{ID: "p3", Amount: 20000},
	}}
	// Every payment contributes its recorded amount, including the second.
	if got := booking.TotalPaid(); got != 100000 {
		t.Errorf("expected total 100000, got %d", got)
	}

	if got := (Booking{}).TotalPaid(); got != 0 {
		t.Errorf("expected 0 for no payments, got %d", got)
	}
}
