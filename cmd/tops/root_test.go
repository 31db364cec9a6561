package main

import (
	"testing"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "tops" {
			t.Errorf("expected use 'tops', got %q", cmd.Use)
		}
	})

	t.Run("has descriptions and version", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" || cmd.Long == "" {
			t.Error("expected non-empty descriptions")
		}
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()

		found := make(map[string]bool)
		for _, sub := range cmd.Commands() {
			found[sub.Use] = true
		}
		for _, want := range []string{"enrich", "chart", "update", "init", "version"} {
			if !found[want] {
				t.Errorf("expected %s subcommand", want)
			}
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}

// TestPipelineCommandFlags tests which flags each pipeline command exposes.
func TestPipelineCommandFlags(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		present []string
		absent  []string
	}{
		{name: "enrich", present: []string{"file", "config", "dry-run", "json", "api-url", "delay", "backoff", "anchor"}, absent: []string{"image", "threshold"}},
		{name: "chart", present: []string{"file", "config", "dry-run", "markdown", "image", "threshold", "title", "size"}, absent: []string{"api-url", "delay"}},
		{name: "update", present: []string{"file", "image", "api-url", "threshold", "output"}},
	}

	root := NewRootCmd()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sub, _, err := root.Find([]string{tc.name})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, name := range tc.present {
				if sub.Flags().Lookup(name) == nil {
					t.Errorf("expected flag --%s", name)
				}
			}
			for _, name := range tc.absent {
				if sub.Flags().Lookup(name) != nil {
					t.Errorf("expected no flag --%s", name)
				}
			}
		})
	}
}
