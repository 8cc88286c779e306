package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-registry/internal/client"
	"pet-registry/internal/router"
)

// runCmd ejecuta petctl contra un server real (router + repo in-memory).
func runCmd(t *testing.T, serverAddr string, args ...string) (string, error) {
	t.Helper()

	full := append([]string{
		"--server-url", serverAddr,
		"--debug-user", "owner-1",
		"--output", "text",
	}, args...)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(full)

	err := rootCmd.Execute()
	return out.String(), err
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	t.Cleanup(ts.Close)
	return ts
}

func seed(t *testing.T, serverAddr, name, species string) client.Pet {
	t.Helper()

	api, err := client.New(client.Options{BaseURL: serverAddr, DebugUserID: "owner-1"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	p, err := api.CreatePet(context.Background(), client.CreatePetInput{Name: name, Species: species})
	if err != nil {
		t.Fatalf("seed pet: %v", err)
	}
	return p
}

func TestCLI_AddAndList(t *testing.T) {
	ts := newServer(t)

	out, err := runCmd(t, ts.URL, "add", "Milo", "--species", "dog")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "Created pet: Milo") {
		t.Fatalf("add output = %q", out)
	}

	out, err = runCmd(t, ts.URL, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Milo (dog)") {
		t.Fatalf("list output = %q", out)
	}
}

func TestCLI_List_SpeciesFilter(t *testing.T) {
	ts := newServer(t)
	seed(t, ts.URL, "Milo", "dog")
	seed(t, ts.URL, "Luna", "cat")

	out, err := runCmd(t, ts.URL, "list", "--species", "cat")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.Contains(out, "Milo") || !strings.Contains(out, "Luna") {
		t.Fatalf("filtered output = %q", out)
	}

	// reset del flag para otros tests
	listSpecies = ""
}

func TestCLI_List_JSONOutput(t *testing.T) {
	ts := newServer(t)
	seed(t, ts.URL, "Milo", "dog")

	out, err := runCmd(t, ts.URL, "list", "--output", "json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var pets []client.Pet
	if err := json.Unmarshal([]byte(out), &pets); err != nil {
		t.Fatalf("output is not json: %v\n%s", err, out)
	}
	if len(pets) != 1 || pets[0].Name != "Milo" {
		t.Fatalf("decoded = %+v", pets)
	}
}

func TestCLI_Delete(t *testing.T) {
	ts := newServer(t)
	p := seed(t, ts.URL, "Milo", "dog")
	seed(t, ts.URL, "Luna", "cat")

	out, err := runCmd(t, ts.URL, "delete", p.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !strings.Contains(out, "Deleted pet: "+p.ID) || !strings.Contains(out, "(1 remaining)") {
		t.Fatalf("delete output = %q", out)
	}
}

func TestCLI_Delete_NotFound_SurfacesMessage(t *testing.T) {
	ts := newServer(t)
	seed(t, ts.URL, "Milo", "dog")

	_, err := runCmd(t, ts.URL, "delete", "no-such-id")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "pet not found") {
		t.Fatalf("err = %v, want server message surfaced", err)
	}
}

func TestCLI_Get(t *testing.T) {
	ts := newServer(t)
	p := seed(t, ts.URL, "Milo", "dog")

	out, err := runCmd(t, ts.URL, "get", p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(out, "Name:    Milo") {
		t.Fatalf("get output = %q", out)
	}
}
