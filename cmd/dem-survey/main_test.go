package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jateonwr/dem-survey/pkg/model"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestContractOperations(t *testing.T) {
	out := execute(t, "contract", "--operations")
	for _, want := range []string{"getReferenceData", "submitSurvey"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	out := execute(t, "config", "--defaults")
	if !strings.Contains(out, "toggleRules") {
		t.Fatalf("expected bundled defaults, got:\n%s", out)
	}
}

func TestConfigEndpointFlagWins(t *testing.T) {
	t.Setenv("DEM_SURVEY_ENDPOINT", "https://env.example.org/exec")
	out := execute(t, "config", "--env-file", "missing.env", "--endpoint", "https://flag.example.org/exec")
	if !strings.Contains(out, "https://flag.example.org/exec") {
		t.Fatalf("expected flag endpoint, got:\n%s", out)
	}
}

func TestReferenceTablePadsShorterList(t *testing.T) {
	tbl := referenceTable(model.ReferenceData{
		Basins:    []string{"ลุ่มน้ำปิง"},
		Provinces: []string{"เชียงใหม่", "ลำพูน"},
	})
	if got := len(tbl.Rows); got != 3 {
		t.Fatalf("rows = %d, want header plus 2", got)
	}
}
