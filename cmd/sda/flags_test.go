// ABOUTME: Tests for CLI flag parsing and validation
// ABOUTME: Covers defaults, print mode shorthands and rejected values

package main

import (
	"io"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	args, err := parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if args.mode != "full" || args.outputFormat != "text" || args.timeout != 0 {
		t.Errorf("defaults = %+v", args)
	}
	if args.headless() {
		t.Error("no flags should mean interactive mode")
	}
}

func TestParseFlags_Print(t *testing.T) {
	t.Parallel()

	args, err := parseFlags([]string{
		"--print", "--mode", "convo", "--output-format", "json",
		"--timeout", "45s", "--path", "runs/r1", "--no-snapshot",
		"make", "orders",
	}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if !args.headless() || args.mode != "convo" || args.outputFormat != "json" {
		t.Errorf("args = %+v", args)
	}
	if args.timeout != 45*time.Second || args.path != "runs/r1" || !args.noSnapshot {
		t.Errorf("args = %+v", args)
	}
	if len(args.rest) != 2 || args.rest[0] != "make" {
		t.Errorf("rest = %v", args.rest)
	}
}

func TestParseFlags_PromptShorthand(t *testing.T) {
	t.Parallel()

	args, err := parseFlags([]string{"-p", "ten customers"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if !args.headless() || args.prompt != "ten customers" {
		t.Errorf("args = %+v", args)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string][]string{
		"mode":     {"--mode", "chat"},
		"format":   {"--output-format", "yaml"},
		"timeout":  {"--timeout", "-1s"},
		"unknown":  {"--yolo"},
		"duration": {"--timeout", "soon"},
	}
	for name, argv := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := parseFlags(argv, io.Discard); err == nil {
				t.Errorf("parseFlags(%v) should fail", argv)
			}
		})
	}
}

func TestBuildCLIOverrides(t *testing.T) {
	t.Parallel()

	s := buildCLIOverrides(cliArgs{baseURL: "http://h:1", timeout: time.Second})
	if s.BaseURL != "http://h:1" || s.Timeout != time.Second {
		t.Errorf("overrides = %+v", s)
	}
	if s := buildCLIOverrides(cliArgs{}); s.BaseURL != "" || s.Timeout != 0 {
		t.Errorf("empty overrides = %+v", s)
	}
}
