package main

import (
	"encoding/json"
	"os"
	"testing"
)

func TestHealthBeforeAndAfterFirstAdd(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"health"}, env.configPath)
	if err != nil {
		t.Fatalf("health: %v\n%s", err, out)
	}
	requireContains(t, out, "Queue Health")
	requireContains(t, out, "not created yet")

	if _, _, err := runCLI(t, []string{"add", "--id", "a1"}, env.configPath); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, _, err = runCLI(t, []string{"health", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("health --json: %v", err)
	}
	var report struct {
		Checks []struct {
			Name   string
			Passed bool
		} `json:"checks"`
		Store struct {
			SchemaVersion int
			TotalItems    int
		} `json:"store"`
		State string `json:"state"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode health output: %v", err)
	}
	if report.Store.SchemaVersion != 1 || report.Store.TotalItems != 1 {
		t.Fatalf("unexpected store report: %+v", report.Store)
	}
	if report.State != "ready" {
		t.Fatalf("expected ready state, got %q", report.State)
	}
	for _, c := range report.Checks {
		if !c.Passed {
			t.Fatalf("check %s failed", c.Name)
		}
	}
}

func TestHealthJSONReportsStoreError(t *testing.T) {
	env := setupCLITestEnv(t)
	// A directory where the database file belongs makes the health check fail.
	if err := os.MkdirAll(env.cfg.DatabasePath(), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	out, _, err := runCLI(t, []string{"health", "--json"}, env.configPath)
	if err == nil {
		t.Fatal("expected health to fail")
	}
	var report struct {
		Checks []struct {
			Name   string
			Passed bool
			Detail string
		} `json:"checks"`
		Store struct {
			Error string
		} `json:"store"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode health output %q: %v", out, err)
	}
	if report.Store.Error == "" {
		t.Fatal("expected store error in report")
	}
	var storeCheck bool
	for _, c := range report.Checks {
		if c.Name == "Queue database" {
			storeCheck = true
			if c.Passed {
				t.Fatalf("expected queue database check to fail: %+v", c)
			}
		}
	}
	if !storeCheck {
		t.Fatalf("expected a queue database check, got %+v", report.Checks)
	}
}
