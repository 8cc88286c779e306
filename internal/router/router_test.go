package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-registry/internal/router"
)

func TestHTTP_EndToEnd_PetLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"
	otherID := "other-1"

	// 1) Owner crea dos mascotas
	miloID := createPet(t, ts.URL, ownerID, map[string]any{
		"name":    "Milo",
		"species": "dog",
		"sex":     "male",
	})
	lunaID := createPet(t, ts.URL, ownerID, map[string]any{
		"name":    "Luna",
		"species": "cat",
	})

	// 2) Lista del owner tiene ambas
	{
		st, body := doReq(t, ts.URL, "GET", "/pets", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
		}
		if got := petCount(t, body); got != 2 {
			t.Fatalf("expected 2 pets, got %d", got)
		}
	}

	// 3) Otro usuario no ve el perfil
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+miloID, otherID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 get by stranger, got %d", st)
		}
	}

	// 4) Otro usuario no puede borrar
	{
		st, body := doReq(t, ts.URL, "DELETE", "/pets/"+miloID, otherID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 delete by stranger, got %d body=%s", st, string(body))
		}
	}

	// 5) PATCH del owner
	{
		st, body := doReq(t, ts.URL, "PATCH", "/pets/"+miloID, ownerID, map[string]any{
			"notes": "updated",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch, got %d body=%s", st, string(body))
		}
	}

	// 6) Owner borra a Milo: 204 sin body
	{
		st, body := doReq(t, ts.URL, "DELETE", "/pets/"+miloID, ownerID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d body=%s", st, string(body))
		}
		if len(body) != 0 {
			t.Fatalf("expected empty body on 204, got %s", string(body))
		}
	}

	// 7) El perfil borrado ya no existe
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+miloID, ownerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}

	// 8) Borrar de nuevo => 404 con mensaje JSON
	{
		st, body := doReq(t, ts.URL, "DELETE", "/pets/"+miloID, ownerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 re-delete, got %d", st)
		}
		var resp struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Error == "" {
			t.Fatalf("expected error message in body, got %s", string(body))
		}
	}

	// 9) La lista quedó con una sola mascota
	{
		st, body := doReq(t, ts.URL, "GET", "/pets", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		if got := petCount(t, body); got != 1 {
			t.Fatalf("expected 1 pet, got %d body=%s", got, string(body))
		}
	}

	// 10) Luna sigue intacta
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+lunaID, ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get luna, got %d", st)
		}
	}
}

func TestHTTP_Patch_BirthDateVariants(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"
	petID := createPet(t, ts.URL, ownerID, map[string]any{"name": "Milo"})

	// 1) setear fecha
	{
		st, body := doReq(t, ts.URL, "PATCH", "/pets/"+petID, ownerID, map[string]any{
			"birth_date": "2020-01-31",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch birth_date, got %d body=%s", st, string(body))
		}
		var resp struct {
			BirthDate *string `json:"birth_date"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.BirthDate == nil {
			t.Fatalf("birth_date not set: %s", string(body))
		}
	}

	// 2) null explícito limpia
	{
		st, body := doReq(t, ts.URL, "PATCH", "/pets/"+petID, ownerID, map[string]any{
			"birth_date": nil,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch null birth_date, got %d body=%s", st, string(body))
		}
		var resp struct {
			BirthDate *string `json:"birth_date"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.BirthDate != nil {
			t.Fatalf("birth_date must be cleared: %s", string(body))
		}
	}

	// 3) tipo inválido => 400
	{
		st, _ := doReq(t, ts.URL, "PATCH", "/pets/"+petID, ownerID, map[string]any{
			"birth_date": 123,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for numeric birth_date, got %d", st)
		}
	}
}

func TestHTTP_RequiresAuth(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// sin X-Debug-User-ID ni token => 401
	for _, tc := range []struct {
		method, path string
	}{
		{"GET", "/pets"},
		{"POST", "/pets"},
		{"DELETE", "/pets/some-id"},
	} {
		st, _ := doReq(t, ts.URL, tc.method, tc.path, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, st)
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("health: got %d %q", st, string(body))
	}
}

func createPet(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func petCount(t *testing.T, body []byte) int {
	t.Helper()

	var items []map[string]any
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("unmarshal list: %v body=%s", err, string(body))
	}
	return len(items)
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
