package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/matheus3301/estate/internal/config"
	"github.com/matheus3301/estate/internal/profile"
)

const flatJSON = `{"_id":"L1","name":"Sea View","regularPrice":25000,"type":"rent","bedrooms":2,"bathrooms":1,"userRef":"U1"}`

func setup(t *testing.T) string {
	t.Helper()
	profile.SetBaseDir(t.TempDir())
	t.Cleanup(func() { profile.SetBaseDir("") })
	t.Setenv(config.EnvAPIURL, "")
	t.Setenv(config.EnvProfile, "")
	t.Setenv(config.EnvStoreBackend, config.BackendJSON)

	r := chi.NewRouter()
	r.Get("/api/listing/get", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[` + flatJSON + `]`))
	})
	r.Get("/api/listing/get/{id}", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "id") != "L1" {
			http.NotFound(w, req)
			return
		}
		_, _ = w.Write([]byte(flatJSON))
	})
	r.Get("/api/user/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"_id":"U1","username":"ravi","email":"ravi@example.com"}`))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	if stopErr := stopApp(); err == nil {
		err = stopErr
	}
	return out.String(), err
}

func TestWishlistCommands(t *testing.T) {
	api := setup(t)

	out, err := run(t, "--api", api, "wishlist", "toggle", "L1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !strings.Contains(out, "Saved Sea View") {
		t.Errorf("toggle output = %q", out)
	}

	out, err = run(t, "--json", "wishlist", "has", "L1")
	if err != nil {
		t.Fatalf("has: %v", err)
	}
	var has struct{ Saved bool }
	if err := json.Unmarshal([]byte(out), &has); err != nil || !has.Saved {
		t.Fatalf("has output = %q (%v)", out, err)
	}

	out, err = run(t, "wishlist", "list")
	if err != nil || !strings.Contains(out, "L1") {
		t.Fatalf("list = %q, %v", out, err)
	}

	if _, err := run(t, "wishlist", "remove", "L1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	out, _ = run(t, "wishlist", "has", "L1")
	if strings.TrimSpace(out) != "false" {
		t.Errorf("has after remove = %q", out)
	}
}

func TestReviewCommands(t *testing.T) {
	api := setup(t)

	if _, err := run(t, "--api", api, "reviews", "add", "L1", "--rating", "9", "--text", "great"); err == nil {
		t.Fatal("out of range rating should be rejected")
	}
	if _, err := run(t, "--api", api, "reviews", "add", "L1", "--rating", "4", "--text", "Quiet street"); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := run(t, "reviews", "list", "L1")
	if err != nil || !strings.Contains(out, "Quiet street") || !strings.Contains(out, "★★★★☆") {
		t.Fatalf("list = %q, %v", out, err)
	}

	out, err = run(t, "--json", "collections")
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	if !strings.Contains(out, `"listingId": "L1"`) {
		t.Errorf("collections = %q", out)
	}

	if _, err := run(t, "--api", api, "reviews", "clear", "L1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	out, _ = run(t, "reviews", "list", "L1")
	if !strings.Contains(out, "No reviews yet.") {
		t.Errorf("list after clear = %q", out)
	}
}

func TestListingCommands(t *testing.T) {
	api := setup(t)

	out, err := run(t, "--api", api, "listing", "show", "L1")
	if err != nil || !strings.Contains(out, "Sea View (L1)") {
		t.Fatalf("show = %q, %v", out, err)
	}
	if _, err := run(t, "--api", api, "listing", "show", "missing"); err == nil {
		t.Fatal("show of unknown listing should fail")
	}

	out, err = run(t, "--api", api, "listing", "search", "--type", "rent", "--limit", "4")
	if err != nil || !strings.Contains(out, "For Rent") {
		t.Fatalf("search = %q, %v", out, err)
	}
	if _, err := run(t, "--api", api, "listing", "search", "--type", "castle"); err == nil {
		t.Fatal("unknown type should fail")
	}
}

func TestContactLink(t *testing.T) {
	api := setup(t)

	if _, err := run(t, "--api", api, "contact", "link", "L1", "--message", "Hi"); err == nil {
		t.Fatal("contact without a configured user should fail")
	}

	if err := config.Save(profile.ConfigPath(), &config.Config{User: config.User{ID: "U2", Name: "Asha"}}); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "--api", api, "contact", "link", "L1", "--message", "  "); err == nil {
		t.Fatal("blank message should fail")
	}
	out, err := run(t, "--api", api, "contact", "link", "L1", "--provider", "outlook", "--message", "Is it available?")
	if err != nil {
		t.Fatalf("link: %v", err)
	}
	if !strings.HasPrefix(out, "https://outlook.live.com/") || !strings.Contains(out, "ravi%40example.com") {
		t.Errorf("link = %q", out)
	}
}
