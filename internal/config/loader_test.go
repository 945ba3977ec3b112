// internal/config/loader_test.go
//
// Loader tests.  Each test builds a throw-away config root under t.TempDir,
// points CERNEY_ROOT at it, and drives Load() end to end so the yaml layer,
// the env overlay, path resolution, and validation are all exercised the way
// boot exercises them.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeRoot creates <tmp>/conf/global.yaml with the given body and returns
// the root directory.
func writeRoot(t *testing.T, yamlBody string) string {
	t.Helper()
	root := t.TempDir()
	confDir := filepath.Join(root, "conf")
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatalf("mkdir conf: %v", err)
	}
	if err := os.WriteFile(filepath.Join(confDir, "global.yaml"), []byte(yamlBody), 0o644); err != nil {
		t.Fatalf("write global.yaml: %v", err)
	}
	return root
}

const baseYAML = `http:
  listen_addr: "127.0.0.1:8080"
ledger:
  path: "data/design-requests.json"
storage:
  enabled: false
mirror:
  enabled: false
admin:
  token: ""
`

func TestLoad_EnvOverrideApplies(t *testing.T) {
	root := writeRoot(t, baseYAML)
	t.Setenv("CERNEY_ROOT", root)
	t.Setenv("CERNEY_ADMIN__TOKEN", "secret-token")
	t.Setenv("CERNEY_HTTP__LISTEN_ADDR", "127.0.0.1:9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Env beats yaml: the yaml token is empty and the yaml addr is :8080.
	if cfg.Admin.Token != "secret-token" {
		t.Errorf("Admin.Token = %q, want %q", cfg.Admin.Token, "secret-token")
	}
	if cfg.HTTP.ListenAddr != "127.0.0.1:9999" {
		t.Errorf("HTTP.ListenAddr = %q, want %q", cfg.HTTP.ListenAddr, "127.0.0.1:9999")
	}
}

func TestLoad_EnvOverrideSetsMirrorDSN(t *testing.T) {
	root := writeRoot(t, baseYAML)
	t.Setenv("CERNEY_ROOT", root)
	t.Setenv("CERNEY_MIRROR__DSN", "user:pw@tcp(db:3306)/cerney")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mirror.DSN != "user:pw@tcp(db:3306)/cerney" {
		t.Errorf("Mirror.DSN = %q, want the env value", cfg.Mirror.DSN)
	}
}

func TestLoad_RelativeLedgerPathResolvedAgainstRoot(t *testing.T) {
	root := writeRoot(t, baseYAML)
	t.Setenv("CERNEY_ROOT", root)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := filepath.Join(root, "data", "design-requests.json")
	if cfg.Ledger.Path != want {
		t.Errorf("Ledger.Path = %q, want %q", cfg.Ledger.Path, want)
	}
	if cfg.Paths.Root != root {
		t.Errorf("Paths.Root = %q, want %q", cfg.Paths.Root, root)
	}
}

func TestLoad_AbsoluteLedgerPathKept(t *testing.T) {
	root := writeRoot(t, baseYAML)
	t.Setenv("CERNEY_ROOT", root)
	abs := filepath.Join(t.TempDir(), "ledger.json")
	t.Setenv("CERNEY_LEDGER__PATH", abs)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ledger.Path != abs {
		t.Errorf("Ledger.Path = %q, want %q", cfg.Ledger.Path, abs)
	}
}

func TestLoad_StorageEnabledRequiresBucket(t *testing.T) {
	root := writeRoot(t, `http:
  listen_addr: "127.0.0.1:8080"
ledger:
  path: "data/design-requests.json"
storage:
  enabled: true
  region: "us-east-1"
  public_base_url: "https://cdn.example.com"
mirror:
  enabled: false
`)
	t.Setenv("CERNEY_ROOT", root)

	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded with storage enabled and no bucket, want validation error")
	}
}

func TestLoad_MirrorEnabledRequiresDSN(t *testing.T) {
	root := writeRoot(t, `http:
  listen_addr: "127.0.0.1:8080"
ledger:
  path: "data/design-requests.json"
mirror:
  enabled: true
`)
	t.Setenv("CERNEY_ROOT", root)

	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded with mirror enabled and no DSN, want validation error")
	}
}

func TestLoad_CachesForGet(t *testing.T) {
	root := writeRoot(t, baseYAML)
	t.Setenv("CERNEY_ROOT", root)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := Get(); got != cfg {
		t.Errorf("Get() = %p, want the pointer Load returned (%p)", got, cfg)
	}
}
