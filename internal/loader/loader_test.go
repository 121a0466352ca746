package loader_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/shubham-kshetre/issueforms/internal/loader"
	"github.com/shubham-kshetre/issueforms/pkg/form"
)

const minimalTemplate = `name: Feature Request
description: Suggest a new feature
body:
  - type: input
    id: title
    attributes:
      label: Feature title
`

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feature_request.yml")
	if err := os.WriteFile(path, []byte(minimalTemplate), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	l := loader.New(form.NewLoaderOptions())
	doc, err := l.Load(context.Background(), form.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if string(doc.Raw()) != minimalTemplate {
		t.Fatalf("document raw mismatch:\n%s", doc.Raw())
	}
}

func TestLoad_FS(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/feature_request.yml": &fstest.MapFile{Data: []byte(minimalTemplate)},
	}

	l := loader.New(form.NewLoaderOptions(form.WithFileSystem(fsys)))
	doc, err := l.Load(context.Background(), form.SourceFromFS("forms/feature_request.yml"))
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if string(doc.Raw()) != minimalTemplate {
		t.Fatalf("document raw mismatch:\n%s", doc.Raw())
	}
}

func TestLoad_FileRejectsNonTemplateExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feature_request.json")
	if err := os.WriteFile(path, []byte(`{"name": "Feature Request"}`), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	l := loader.New(form.NewLoaderOptions())
	_, err := l.Load(context.Background(), form.SourceFromFile(path))
	if err == nil {
		t.Fatal("expected error for non-template extension")
	}
	if !strings.Contains(err.Error(), ".yml or .yaml") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_FSRejectsOversizedTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"huge.yml": &fstest.MapFile{Data: []byte(strings.Repeat("a", form.MaxDocumentSize+1))},
	}

	l := loader.New(form.NewLoaderOptions(form.WithFileSystem(fsys)))
	_, err := l.Load(context.Background(), form.SourceFromFS("huge.yml"))
	if err == nil {
		t.Fatal("expected error for oversized template")
	}
	if !strings.Contains(err.Error(), "byte limit") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_FSMissingFilesystem(t *testing.T) {
	l := loader.New(form.NewLoaderOptions())
	_, err := l.Load(context.Background(), form.SourceFromFS("forms/feature_request.yml"))
	if err == nil {
		t.Fatal("expected error for fs source without a filesystem")
	}
}

func TestLoad_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(minimalTemplate))
	}))
	defer server.Close()

	l := loader.New(form.NewLoaderOptions(form.WithHTTPFallback(5 * time.Second)))
	doc, err := l.Load(context.Background(), form.SourceFromURL(server.URL))
	if err != nil {
		t.Fatalf("load http: %v", err)
	}
	if string(doc.Raw()) != minimalTemplate {
		t.Fatalf("document raw mismatch:\n%s", doc.Raw())
	}
}

func TestLoad_HTTPRejectsHTMLResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>sign in</body></html>"))
	}))
	defer server.Close()

	l := loader.New(form.NewLoaderOptions(form.WithHTTPFallback(5 * time.Second)))
	_, err := l.Load(context.Background(), form.SourceFromURL(server.URL))
	if err == nil {
		t.Fatal("expected error for text/html response")
	}
	if !strings.Contains(err.Error(), "text/html") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_HTTPRejectsOversizedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", form.MaxDocumentSize+1)))
	}))
	defer server.Close()

	l := loader.New(form.NewLoaderOptions(form.WithHTTPFallback(5 * time.Second)))
	_, err := l.Load(context.Background(), form.SourceFromURL(server.URL))
	if err == nil {
		t.Fatal("expected error for oversized body")
	}
	if !strings.Contains(err.Error(), "byte limit") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_HTTPDisabledByDefault(t *testing.T) {
	l := loader.New(form.NewLoaderOptions())
	_, err := l.Load(context.Background(), form.SourceFromURL("http://example.com/form.yml"))
	if err == nil {
		t.Fatal("expected error when http support is disabled")
	}
	if !strings.Contains(err.Error(), "http support disabled") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	l := loader.New(form.NewLoaderOptions(form.WithHTTPFallback(5 * time.Second)))
	_, err := l.Load(context.Background(), form.SourceFromURL(server.URL))
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestLoad_NilSource(t *testing.T) {
	l := loader.New(form.NewLoaderOptions())
	_, err := l.Load(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error for nil source")
	}
}

func TestLoadDir(t *testing.T) {
	second := strings.Replace(minimalTemplate, "Feature Request", "Bug Report", 1)
	fsys := fstest.MapFS{
		"feature_request.yml": &fstest.MapFile{Data: []byte(minimalTemplate)},
		"bug_report.yaml":     &fstest.MapFile{Data: []byte(second)},
		"config.json":         &fstest.MapFile{Data: []byte(`{"ignored": true}`)},
		"README.md":           &fstest.MapFile{Data: []byte("# templates")},
	}

	templates, err := loader.LoadDir(fsys)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(templates))
	}

	names := make(map[string]bool, len(templates))
	for _, tpl := range templates {
		names[tpl.Name] = true
	}
	if !names["Feature Request"] || !names["Bug Report"] {
		t.Fatalf("unexpected template names: %v", names)
	}
}

func TestLoadDir_DuplicateNames(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yml": &fstest.MapFile{Data: []byte(minimalTemplate)},
		"b.yml": &fstest.MapFile{Data: []byte(minimalTemplate)},
	}

	_, err := loader.LoadDir(fsys)
	if err == nil {
		t.Fatal("expected duplicate name error")
	}
	if !strings.Contains(err.Error(), "duplicate template name") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadDir_UnnamedTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"unnamed.yml": &fstest.MapFile{Data: []byte("description: no name\nbody:\n  - type: markdown\n    attributes:\n      value: hi\n")},
	}

	_, err := loader.LoadDir(fsys)
	if err == nil {
		t.Fatal("expected error for template without a name")
	}
}
