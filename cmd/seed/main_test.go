package main

import (
	"context"
	"strings"
	"testing"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()

	tests := []struct {
		name string
		want string
	}{
		{name: "dsn", want: ""},
		{name: "truncate", want: "false"},
		{name: "workers", want: "4"},
	}

	for _, tc := range tests {
		flag := cmd.Flags().Lookup(tc.name)
		if flag == nil {
			t.Fatalf("expected flag %s", tc.name)
		}
		if flag.DefValue != tc.want {
			t.Fatalf("expected %s default %q, got %q", tc.name, tc.want, flag.DefValue)
		}
	}
}

func TestRunRejectsNonPositiveWorkers(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("STORE_BACKEND", "postgres")

	err := run(context.Background(), seedFlags{workers: 0})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "--workers") {
		t.Fatalf("unexpected error: %v", err)
	}
}
