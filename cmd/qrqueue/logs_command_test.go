package main

import (
	"strings"
	"testing"
)

func TestLogsShowsItemActivity(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"add", "--id", "a1", "-f", "code=QR123"}, env.configPath); err != nil {
		t.Fatalf("add a1: %v", err)
	}
	if _, _, err := runCLI(t, []string{"add", "--id", "b2", "-f", "code=QR456"}, env.configPath); err != nil {
		t.Fatalf("add b2: %v", err)
	}

	out, _, err := runCLI(t, []string{"logs", "--item", "a1"}, env.configPath)
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	requireContains(t, out, "item stored")
	if strings.Contains(out, "item_id=b2") {
		t.Fatalf("expected b2 lines to be filtered out:\n%s", out)
	}
}

func TestItemFilter(t *testing.T) {
	match := itemFilter("a1")
	cases := []struct {
		line string
		want bool
	}{
		{line: "2026-01-01 00:00:00 DEBUG store: item stored item_id=a1", want: true},
		{line: "2026-01-01 00:00:00 DEBUG store: item stored item_id=a10", want: false},
		{line: "2026-01-01 00:00:00 DEBUG store: item stored item_id=a1 present=true", want: true},
		{line: `{"msg":"item stored","item_id":"a1"}`, want: true},
	}
	for _, tc := range cases {
		if got := match(tc.line); got != tc.want {
			t.Fatalf("itemFilter(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
	if !itemFilter("")("anything") {
		t.Fatal("empty filter should match everything")
	}
}
