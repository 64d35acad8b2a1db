package commands

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestNewScanCommand(t *testing.T) {
	cmd := NewScanCommand()

	if cmd.Use != "logtally <log-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	// Check flags exist
	flags := []string{"top", "output", "verbose", "quiet", "webhook-url", "webhook-token"}
	for _, flag := range flags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}

	if got := cmd.Flags().Lookup("top").DefValue; got != "5" {
		t.Errorf("--top default = %s, want 5", got)
	}
}

func TestNewPreviewCommand(t *testing.T) {
	cmd := NewPreviewCommand()

	if cmd.Use != "preview <log-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	flags := []string{"output", "sample"}
	for _, flag := range flags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand()

	if cmd.Use != "version" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if buf.String() != "logtally dev\n" {
		t.Errorf("Output = %q, want %q", buf.String(), "logtally dev\n")
	}
}

func TestExactArgs(t *testing.T) {
	validate := exactArgs(1, "expected exactly one log file path")

	if err := validate(nil, []string{"app.log"}); err != nil {
		t.Errorf("one arg: error = %v", err)
	}

	err := validate(nil, nil)
	if !errors.Is(err, ErrUsage) {
		t.Errorf("no args: error = %v, want ErrUsage", err)
	}

	err = validate(nil, []string{"a.log", "b.log"})
	if !errors.Is(err, ErrUsage) {
		t.Errorf("two args: error = %v, want ErrUsage", err)
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		output  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"yaml", false},
		{"invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			opts := &ScanOptions{Output: tt.output}
			f, err := newFormatter(opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("newFormatter(%q) error = %v, wantErr %v", tt.output, err, tt.wantErr)
			}
			if err == nil && f.Name() != tt.output {
				t.Errorf("Name() = %q, want %q", f.Name(), tt.output)
			}
			if err != nil && !errors.Is(err, ErrUsage) {
				t.Errorf("error = %v, want ErrUsage", err)
			}
		})
	}
}
