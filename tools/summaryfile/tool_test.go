package summaryfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cinebrief/cinebrief/tools"
)

func TestParseBlobWithMarkers(t *testing.T) {
	doc := ParseBlob("FILENAME: test.txt\nCONTENT:\nHello")
	if doc.Filename != "test.txt" {
		t.Errorf("expect filename test.txt, but got %s", doc.Filename)
	}
	if doc.Content != "Hello" {
		t.Errorf("expect content Hello, but got %q", doc.Content)
	}
}

func TestParseBlobWithoutMarkers(t *testing.T) {
	blob := "just a plain summary\nwith two lines"
	doc := ParseBlob(blob)
	if doc.Filename != DefaultFilename {
		t.Errorf("expect default filename %s, but got %s", DefaultFilename, doc.Filename)
	}
	if doc.Content != blob {
		t.Errorf("expect whole blob as content, but got %q", doc.Content)
	}
}

func TestParseBlobKeepsTrailingContent(t *testing.T) {
	doc := ParseBlob("FILENAME: a.txt\nCONTENT:\nline one\n\nline three\n")
	if doc.Content != "line one\n\nline three\n" {
		t.Errorf("content not verbatim: %q", doc.Content)
	}
}

func TestWriteCreatesDirectoryAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "movie_summaries")
	tool := New(WithOutputDir(dir))
	result, err := tool.Run(context.Background(), NewDocument("test.txt", "Hello"))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Path == "" {
		t.Fatalf("expect a written path, but got failure: %s", result.Message)
	}
	bs, err := os.ReadFile(filepath.Join(dir, "test.txt"))
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}
	if string(bs) != "Hello" {
		t.Errorf("expect file body Hello, but got %q", string(bs))
	}
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	tool := New(WithOutputDir(dir))
	ctx := context.Background()
	if _, err := tool.Run(ctx, NewDocument("same.txt", "first")); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	result, err := tool.Run(ctx, NewDocument("same.txt", "second"))
	if err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	if result.Path == "" {
		t.Fatalf("expect overwrite to succeed, but got: %s", result.Message)
	}
	bs, _ := os.ReadFile(filepath.Join(dir, "same.txt"))
	if string(bs) != "second" {
		t.Errorf("expect overwritten body second, but got %q", string(bs))
	}
}

func TestWriteFallsBackToDefaultFilename(t *testing.T) {
	dir := t.TempDir()
	tool := New(WithOutputDir(dir))
	result, err := tool.Run(context.Background(), NewDocument("", "body"))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if filepath.Base(result.Path) != DefaultFilename {
		t.Errorf("expect default filename, but got %s", result.Path)
	}
}

func TestWriteStripsDirectoryFromFilename(t *testing.T) {
	dir := t.TempDir()
	tool := New(WithOutputDir(dir))
	result, err := tool.Run(context.Background(), NewDocument("../escape.txt", "body"))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got := filepath.Base(result.Path); got != "escape.txt" {
		t.Errorf("expect bare filename, but got %s", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.txt")); err != nil {
		t.Errorf("expect file inside output dir: %v", err)
	}
}

func TestWriteConvertsFilesystemFailure(t *testing.T) {
	// a file where the output directory should be makes MkdirAll fail
	blocked := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(blocked, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	tool := New(WithOutputDir(blocked))
	result, err := tool.Run(context.Background(), NewDocument("test.txt", "body"))
	if err != nil {
		t.Fatalf("expect failure as result, but got error: %v", err)
	}
	if result.Path != "" {
		t.Errorf("expect no path on failure, but got %s", result.Path)
	}
	if !strings.Contains(result.Message, "could not create output directory") {
		t.Errorf("expect failure description, but got %q", result.Message)
	}
}

func TestToolOptionsInstallHooks(t *testing.T) {
	var started, ended int
	tool := New(
		WithOutputDir(t.TempDir()),
		WithToolOptions(
			tools.WithTitle("SummarySink"),
			tools.WithStartHook(func(ctx context.Context, tl tools.AnonymousTool, in any) {
				started++
			}),
			tools.WithEndHook(func(ctx context.Context, tl tools.AnonymousTool, in, out any) {
				ended++
			}),
		),
	)
	if got := tool.Title(); got != "SummarySink" {
		t.Errorf("expect title SummarySink, but got %s", got)
	}
	if _, err := tool.RunAnonymous(context.Background(), NewDocument("hooked.txt", "body")); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if started != 1 || ended != 1 {
		t.Errorf("expect start and end hooks to fire once, but got start=%d end=%d", started, ended)
	}
}

func TestRunAnonymousParsesRawBlob(t *testing.T) {
	dir := t.TempDir()
	tool := New(WithOutputDir(dir))
	out, err := tool.RunAnonymous(context.Background(), "FILENAME: raw.txt\nCONTENT:\nraw body")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	result, ok := out.(*Result)
	if !ok {
		t.Fatalf("expect *Result, but got %T", out)
	}
	if filepath.Base(result.Path) != "raw.txt" {
		t.Errorf("expect raw.txt, but got %s", result.Path)
	}
}
