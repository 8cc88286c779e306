package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_DeletePet_CallsDeleteOnPetPath(t *testing.T) {
	var gotMethod, gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c, err := New(Options{BaseURL: ts.URL, DebugUserID: "u1"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if err := c.DeletePet(context.Background(), "abc-123"); err != nil {
		t.Fatalf("DeletePet() error = %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method = %s, want DELETE", gotMethod)
	}
	if gotPath != "/pets/abc-123" {
		t.Errorf("path = %s, want /pets/abc-123", gotPath)
	}
}

func TestClient_DeletePet_SurfacesServerMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"pet not found"}`))
	}))
	defer ts.Close()

	c, err := New(Options{BaseURL: ts.URL, DebugUserID: "u1"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	err = c.DeletePet(context.Background(), "nope")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", apiErr.StatusCode)
	}
	// Error() es solo el mensaje: es lo que termina en el estado de error.
	if apiErr.Error() != "pet not found" {
		t.Errorf("message = %q, want %q", apiErr.Error(), "pet not found")
	}
}

func TestClient_DeletePet_FallsBackToStatusText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>gateway exploded</html>"))
	}))
	defer ts.Close()

	c, err := New(Options{BaseURL: ts.URL, DebugUserID: "u1"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	err = c.DeletePet(context.Background(), "x")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Error() != http.StatusText(http.StatusBadGateway) {
		t.Errorf("message = %q, want %q", apiErr.Error(), http.StatusText(http.StatusBadGateway))
	}
}

func TestClient_SendsAuthHeaders(t *testing.T) {
	var gotAuth, gotDebug string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotDebug = r.Header.Get("X-Debug-User-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c, err := New(Options{BaseURL: ts.URL, Token: "tok123", DebugUserID: "u1"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := c.ListPets(context.Background()); err != nil {
		t.Fatalf("ListPets() error = %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok123")
	}
	if gotDebug != "u1" {
		t.Errorf("X-Debug-User-ID = %q, want %q", gotDebug, "u1")
	}
}
