// ABOUTME: Tests for path normalization, parent resolution and breadcrumb reconstruction
// ABOUTME: Table-driven; covers root handling, dot segments and backslashes

package explorer

import (
	"slices"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"/", ""},
		{"  a/b  ", "a/b"},
		{"/a/b/", "a/b"},
		{"a//b", "a/b"},
		{"a/./b", "a/b"},
		{"a/b/..", "a"},
		{"../../etc", "etc"},
		{`a\b\c`, "a/b/c"},
		{"café", "café"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParent(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":      "",
		"a":     "",
		"a/b":   "a",
		"a/b/c": "a/b",
	}
	for in, want := range tests {
		if got := Parent(in); got != want {
			t.Errorf("Parent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBreadcrumb(t *testing.T) {
	t.Parallel()

	got := Breadcrumb("a/b/c")
	want := []Crumb{
		{Label: "root", Path: ""},
		{Label: "a", Path: "a"},
		{Label: "b", Path: "a/b"},
		{Label: "c", Path: "a/b/c"},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Breadcrumb(a/b/c) = %+v", got)
	}
}

func TestBreadcrumb_SkipsEmptySegments(t *testing.T) {
	t.Parallel()

	if got := Breadcrumb(""); len(got) != 1 || got[0].Label != RootLabel {
		t.Errorf("Breadcrumb(\"\") = %+v", got)
	}
	got := Breadcrumb("/a//b/")
	if len(got) != 3 || got[2].Path != "a/b" {
		t.Errorf("Breadcrumb(/a//b/) = %+v", got)
	}
}
