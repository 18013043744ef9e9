package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLintPathsAcceptsMarkedStatements(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "queries.go", "package q\n\n"+
		"const QList = `--sql 0b8a54e2-4c1f-4f38-9a52-6f7f0f1f2a10\nselect id from projects;\n`\n\n"+
		"const greeting = \"Select your city\"\n\n"+
		"var prompts = []string{\"Update your profile\", \"With thanks from BEAM\"}\n\n"+
		"const updated = `Update your volunteer profile settings`\n")

	violations, err := lintPaths([]string{dir})
	if err != nil {
		t.Fatalf("lintPaths: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("unexpected violations: %+v", violations)
	}
}

func TestLintPathsReportsMissingMarker(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "queries.go", "package q\n\n"+
		"const QBare = `\ninsert into volunteers(email) values ($1);\n`\n\n"+
		"const QBadMarker = `--sql not-a-uuid\nupdate donations set status = $2;\n`\n")

	violations, err := lintPaths([]string{path})
	if err != nil {
		t.Fatalf("lintPaths: %v", err)
	}
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %+v", violations)
	}
	names := []string{violations[0].name, violations[1].name}
	if names[0] != "QBare" || names[1] != "QBadMarker" {
		t.Fatalf("unexpected names %v", names)
	}
	if violations[0].line != 3 {
		t.Fatalf("line = %d, want 3", violations[0].line)
	}
}

func TestLintPathsReportsReusedMarker(t *testing.T) {
	dir := t.TempDir()
	const id = "5d1c7d0a-2f4b-4d6e-8a31-0c9e7b6a5f42"
	writeFile(t, dir, "a.go", "package q\n\nconst QOne = `--sql "+id+"\nselect id from donations;\n`\n")
	writeFile(t, dir, "b.go", "package q\n\nconst QTwo = `--sql "+id+"\nselect id from projects;\n`\n")

	violations, err := lintPaths([]string{dir})
	if err != nil {
		t.Fatalf("lintPaths: %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %+v", violations)
	}
	if !strings.Contains(violations[0].message, "already used by QOne") {
		t.Fatalf("message = %q", violations[0].message)
	}
}

func TestLintPathsSkipsTestsAndHiddenDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "q_test.go", "package q\n\nconst QFixture = `select id from projects;`\n")
	writeFile(t, dir, ".cache/x.go", "package x\n\nconst QHidden = `select id from projects;`\n")
	writeFile(t, dir, "_examples/y.go", "package y\n\nconst QRef = `select id from projects;`\n")

	violations, err := lintPaths([]string{dir})
	if err != nil {
		t.Fatalf("lintPaths: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("unexpected violations: %+v", violations)
	}
}

func TestLintPathsMissingTarget(t *testing.T) {
	if _, err := lintPaths([]string{filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Fatalf("expected error for missing target")
	}
}

func TestLintPathsChecksQueryNamedConstants(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "queries.go", "package q\n\n"+
		"const QPing = `select 1;`\n\n"+
		"const ping = `select 1;`\n\n"+
		"const QUpsert = `\ninsert into volunteers(email) values ($1)\non conflict (email) do nothing;\n`\n")

	violations, err := lintPaths([]string{dir})
	if err != nil {
		t.Fatalf("lintPaths: %v", err)
	}
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %+v", violations)
	}
	if violations[0].name != "QPing" || violations[1].name != "QUpsert" {
		t.Fatalf("unexpected names %q %q", violations[0].name, violations[1].name)
	}
}

func TestStatementPattern(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"select id, title from projects where status = $1", true},
		{"--sql 0b8a54e2-4c1f-4f38-9a52-6f7f0f1f2a10\nupdate donations set status = $2", true},
		{"\n  delete from volunteers where email = $1", true},
		{"with recent as (select 1) select * from recent", true},
		{"insert into donations(id) values ($1)", true},
		{"Select your city", false},
		{"Update your profile", false},
		{"Delete this entry from the list", false},
		{"With thanks", false},
	}
	for _, tc := range cases {
		if got := sqlStatementPattern.MatchString(tc.in); got != tc.want {
			t.Fatalf("sqlStatementPattern(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
