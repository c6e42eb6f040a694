package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	cliadapter "github.com/example/navcsv/internal/adapters/cli"
	"github.com/example/navcsv/internal/config"
	"github.com/example/navcsv/internal/models"
	"github.com/example/navcsv/internal/ports/primary"
)

// TestConvertCmdStructure verifies flags and argument rules of convert.
func TestConvertCmdStructure(t *testing.T) {
	cmd := ConvertCmd()

	if !strings.HasPrefix(cmd.Use, "convert") {
		t.Errorf("Use = %q", cmd.Use)
	}
	for _, name := range []string{"fetch-techniques", "xlsx"} {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			t.Errorf("flag --%s not registered", name)
			continue
		}
		if flag.DefValue != "false" {
			t.Errorf("--%s default = %q, want false", name, flag.DefValue)
		}
	}
}

// TestCatalogCmdStructure verifies fetch and lookup are registered under catalog.
func TestCatalogCmdStructure(t *testing.T) {
	found := map[string]*cobra.Command{}
	for _, sub := range CatalogCmd().Commands() {
		found[sub.Name()] = sub
	}

	fetch, ok := found["fetch"]
	if !ok {
		t.Fatal("fetch subcommand not registered under catalog")
	}
	if fetch.Flags().Lookup("force") == nil {
		t.Error("fetch should have a --force flag")
	}
	if _, ok := found["lookup"]; !ok {
		t.Fatal("lookup subcommand not registered under catalog")
	}
}

func TestConvertArgs(t *testing.T) {
	dir := t.TempDir()
	layer := filepath.Join(dir, "layer.json")
	if err := os.WriteFile(layer, []byte(`{"techniques":[]}`), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "valid", args: []string{layer, "out"}},
		{name: "missing output", args: []string{layer}, wantErr: "accepts 2 arg(s)"},
		{name: "too many", args: []string{layer, "out", "extra"}, wantErr: "accepts 2 arg(s)"},
		{name: "layer missing", args: []string{filepath.Join(dir, "nope.json"), "out"}, wantErr: "does not exist"},
		{name: "layer is dir", args: []string{dir, "out"}, wantErr: "is a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := convertArgs(ConvertCmd(), tt.args)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeTechniqueID(t *testing.T) {
	tests := map[string]string{
		"T1059":       "T1059",
		"t1059":       "T1059",
		" t1059.001 ": "T1059.001",
	}
	for in, want := range tests {
		if got := normalizeTechniqueID(in); got != want {
			t.Errorf("normalizeTechniqueID(%q) = %q, want %q", in, got, want)
		}
	}
}

type stubConversionService struct {
	err     error
	lastReq primary.ConvertRequest
}

func (s *stubConversionService) Convert(ctx context.Context, req primary.ConvertRequest) (*primary.ConvertResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &primary.ConvertResponse{Outputs: []string{req.OutputName + ".csv"}}, nil
}

type stubCatalogService struct{}

func (stubCatalogService) EnsureCatalog(ctx context.Context, req primary.EnsureCatalogRequest) (*primary.EnsureCatalogResponse, error) {
	return &primary.EnsureCatalogResponse{Skipped: true, Location: "techniques.json"}, nil
}

func (stubCatalogService) Lookup(ctx context.Context, id string) (*models.TechniqueRecord, error) {
	return nil, errors.New("not used")
}

func TestConvertRunE(t *testing.T) {
	out := &bytes.Buffer{}
	svc := &stubConversionService{}
	adapter := cliadapter.NewConvertAdapter(svc, cliadapter.NewCatalogAdapter(stubCatalogService{}, out), out)

	err := convertRunE(context.Background(), adapter, cliadapter.ConvertOptions{LayerPath: "layer.json", OutputName: "report"})
	if err != nil {
		t.Fatalf("convertRunE: %v", err)
	}
	if svc.lastReq.OutputName != "report" {
		t.Errorf("OutputName = %q", svc.lastReq.OutputName)
	}

	svc.err = errors.New("technique T9999 not found in catalog")
	if err := convertRunE(context.Background(), adapter, cliadapter.ConvertOptions{}); err == nil {
		t.Error("expected service error to propagate")
	}
}

func TestSetup(t *testing.T) {
	t.Setenv("NAVCSV_CATALOG_STORE", "")
	t.Setenv("NAVCSV_LOG_LEVEL", "")
	origDir, origVerbose := configDir, verbose
	defer func() { configDir, verbose = origDir, origVerbose }()

	t.Run("missing config uses defaults", func(t *testing.T) {
		configDir = t.TempDir()
		cmd := &cobra.Command{}

		if err := Setup(cmd, nil); err != nil {
			t.Fatalf("Setup: %v", err)
		}
		if !cmd.SilenceUsage {
			t.Error("Setup should silence usage for run-time errors")
		}
		if logger.Core().Enabled(zapcore.DebugLevel) {
			t.Error("debug logging enabled without --verbose")
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		configDir = t.TempDir()
		verbose = true
		defer func() { verbose = false }()

		if err := Setup(&cobra.Command{}, nil); err != nil {
			t.Fatalf("Setup: %v", err)
		}
		if !logger.Core().Enabled(zapcore.DebugLevel) {
			t.Error("debug logging not enabled with --verbose")
		}
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		configDir = t.TempDir()
		cfg := config.DefaultConfig()
		cfg.Catalog.Store = "postgres"
		if err := config.SaveConfig(configDir, cfg); err != nil {
			t.Fatal(err)
		}

		err := Setup(&cobra.Command{}, nil)
		if err == nil || !strings.Contains(err.Error(), "invalid catalog store") {
			t.Errorf("err = %v", err)
		}
	})
}
