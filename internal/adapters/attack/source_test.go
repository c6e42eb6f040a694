package attack_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/example/navcsv/internal/adapters/attack"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const bundleJSON = `{"type":"bundle","id":"bundle--1","objects":[
  {"type":"attack-pattern","id":"attack-pattern--1","name":"Command and Scripting Interpreter",
   "external_references":[{"source_name":"mitre-attack","external_id":"T1059"}],
   "kill_chain_phases":[{"kill_chain_name":"mitre-attack","phase_name":"execution"}]}
]}`

func TestHTTPSource_FetchBundle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "navcsv/") {
			t.Errorf("User-Agent = %q", ua)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(bundleJSON))
	}))
	defer srv.Close()

	source := attack.NewHTTPSource(srv.URL, 5*time.Second)
	defer source.CloseIdleConnections()

	bundle, err := source.FetchBundle(context.Background())
	if err != nil {
		t.Fatalf("FetchBundle: %v", err)
	}
	if len(bundle.Objects) != 1 {
		t.Fatalf("objects = %d, want 1", len(bundle.Objects))
	}
	obj := bundle.Objects[0]
	if obj.Type != "attack-pattern" || obj.ExternalReferences[0].ExternalID != "T1059" {
		t.Errorf("decoded %+v", obj)
	}
	if obj.KillChainPhases[0].PhaseName != "execution" {
		t.Errorf("phase = %q", obj.KillChainPhases[0].PhaseName)
	}
}

func TestHTTPSource_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	source := attack.NewHTTPSource(srv.URL, 5*time.Second)
	defer source.CloseIdleConnections()

	_, err := source.FetchBundle(context.Background())

	var fetchErr *attack.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fetchErr.StatusCode != http.StatusNotFound || fetchErr.URL != srv.URL {
		t.Errorf("FetchError = %+v", fetchErr)
	}
}

func TestHTTPSource_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"objects": [`))
	}))
	defer srv.Close()

	source := attack.NewHTTPSource(srv.URL, 5*time.Second)
	defer source.CloseIdleConnections()

	if _, err := source.FetchBundle(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestHTTPSource_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(bundleJSON))
	}))
	defer srv.Close()

	source := attack.NewHTTPSource(srv.URL, 0)
	defer source.CloseIdleConnections()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := source.FetchBundle(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
