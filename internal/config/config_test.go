package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/jateonwr/dem-survey/pkg/form"
)

func TestDefaultsMatchEngine(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if diff := cmp.Diff(form.DefaultRules(), cfg.ToggleRules); diff != "" {
		t.Fatalf("toggle rules mismatch (-engine +yaml):\n%s", diff)
	}
	if diff := cmp.Diff(form.DefaultRequiredAgencyIDs, cfg.RequiredAgencyIDs); diff != "" {
		t.Fatalf("required ids mismatch (-engine +yaml):\n%s", diff)
	}
	if cfg.YearStart != form.DefaultYearStart || cfg.YearEnd != form.DefaultYearEnd {
		t.Fatalf("year range = %d..%d", cfg.YearStart, cfg.YearEnd)
	}
	if cfg.Endpoint == "" {
		t.Fatalf("default endpoint missing")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "survey.yaml")
	if err := os.WriteFile(path, []byte("endpoint: http://localhost:9000/exec\nyearStart: 2550\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Endpoint != "http://localhost:9000/exec" || cfg.YearStart != 2550 {
		t.Fatalf("overlay not applied: %+v", cfg)
	}
	if cfg.YearEnd != 2568 || len(cfg.ToggleRules) != 10 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadFSJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"survey.json": {Data: []byte(`{"requiredAgencyIds":["agencyName"],"timeoutSeconds":5}`)},
	}
	cfg, err := LoadFS(fsys, "survey.json")
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if diff := cmp.Diff([]string{"agencyName"}, cfg.RequiredAgencyIDs); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if cfg.Timeout().Seconds() != 5 {
		t.Fatalf("timeout = %v", cfg.Timeout())
	}
}

func TestLoadRejectsBadRules(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.yaml":   {Data: []byte("toggleRules:\n  - trigger: sourceType\n    input: sourceOther\n    kind: select\n")},
		"empty.yaml": {Data: []byte("  \n")},
		"range.yaml": {Data: []byte("yearStart: 2570\n")},
		"short.yaml": {Data: []byte("yearStart: 999\n")},
		"long.yaml":  {Data: []byte("yearEnd: 10000\n")},
	}
	for _, name := range []string{"bad.yaml", "empty.yaml", "range.yaml", "short.yaml", "long.yaml"} {
		if _, err := LoadFS(fsys, name); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	env := map[string]string{
		EnvEndpoint:  " http://example.test/exec ",
		EnvYearStart: "2545",
		EnvYearEnd:   "2560",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	if err := ApplyEnv(&cfg, lookup); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Endpoint != "http://example.test/exec" || cfg.YearStart != 2545 || cfg.YearEnd != 2560 {
		t.Fatalf("env not applied: %+v", cfg)
	}

	env[EnvYearEnd] = "soon"
	if err := ApplyEnv(&cfg, lookup); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("DEM_SURVEY_TEST_VALUE=from-file\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("DEM_SURVEY_TEST_VALUE", "")
	os.Unsetenv("DEM_SURVEY_TEST_VALUE")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("DEM_SURVEY_TEST_VALUE"); got != "from-file" {
		t.Fatalf("value = %q", got)
	}
}
