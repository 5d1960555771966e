package imagecache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

func TestGenerateFilename(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantExt string
	}{
		{name: "png extension", url: "https://example.com/photo.png", wantExt: ".png"},
		{name: "jpeg extension", url: "https://example.com/photo.jpeg", wantExt: ".jpeg"},
		{name: "query stripped", url: "https://example.com/photo.png?size=large", wantExt: ".png"},
		{name: "no extension defaults to jpg", url: "https://example.com/photo", wantExt: ".jpg"},
		{name: "overlong extension defaults to jpg", url: "https://example.com/archive.tarball", wantExt: ".jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateFilename(tt.url)
			if !strings.HasSuffix(got, tt.wantExt) {
				t.Errorf("generateFilename(%q) = %q, want suffix %q", tt.url, got, tt.wantExt)
			}
			// 16 hash bytes hex-encoded plus extension.
			if len(got) != 32+len(tt.wantExt) {
				t.Errorf("generateFilename(%q) = %q, unexpected length", tt.url, got)
			}
		})
	}
}

func TestGenerateFilenameDeterministic(t *testing.T) {
	url := "https://example.com/photo.png"
	if generateFilename(url) != generateFilename(url) {
		t.Error("generateFilename is not deterministic")
	}
	if generateFilename(url) == generateFilename(url+"?v=2") {
		t.Error("different URLs produced the same filename")
	}
}

func TestDownloadAndCache(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	dir := t.TempDir()
	url := server.URL + "/photo.png"

	path, err := DownloadAndCache(context.Background(), url, CacheOptions{CacheDir: dir})
	if err != nil {
		t.Fatalf("DownloadAndCache() error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("cached path %q not under cache dir %q", path, dir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read cached file: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("cached contents = %q, want %q", data, "image-bytes")
	}

	// Second call reuses the cache without hitting the server.
	path2, err := DownloadAndCache(context.Background(), url, CacheOptions{CacheDir: dir})
	if err != nil {
		t.Fatalf("DownloadAndCache() second call error: %v", err)
	}
	if path2 != path {
		t.Errorf("second call returned %q, want %q", path2, path)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server saw %d requests, want 1", got)
	}
}

func TestDownloadAndCacheOverwrite(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("fresh"))
	}))
	defer server.Close()

	dir := t.TempDir()
	url := server.URL + "/photo.png"
	opts := CacheOptions{CacheDir: dir, AllowOverwrite: true}

	if _, err := DownloadAndCache(context.Background(), url, opts); err != nil {
		t.Fatalf("DownloadAndCache() error: %v", err)
	}
	if _, err := DownloadAndCache(context.Background(), url, opts); err != nil {
		t.Fatalf("DownloadAndCache() second call error: %v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("server saw %d requests, want 2 with AllowOverwrite", got)
	}
}

func TestDownloadAndCacheCustomFilename(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data"))
	}))
	defer server.Close()

	dir := t.TempDir()
	path, err := DownloadAndCache(context.Background(), server.URL+"/a.png", CacheOptions{
		CacheDir: dir,
		Filename: "pinned.png",
	})
	if err != nil {
		t.Fatalf("DownloadAndCache() error: %v", err)
	}
	if filepath.Base(path) != "pinned.png" {
		t.Errorf("cached filename = %q, want pinned.png", filepath.Base(path))
	}
}

func TestDownloadAndCacheInvalidURL(t *testing.T) {
	if _, err := DownloadAndCache(context.Background(), "ftp://example.com/a.png", CacheOptions{CacheDir: t.TempDir()}); err == nil {
		t.Error("expected error for non-HTTP URL, got nil")
	}
	if _, err := DownloadAndCache(context.Background(), "", CacheOptions{CacheDir: t.TempDir()}); err == nil {
		t.Error("expected error for empty URL, got nil")
	}
}

func TestDefaultCacheDir(t *testing.T) {
	dir, err := DefaultCacheDir()
	if err != nil {
		t.Fatalf("DefaultCacheDir() error: %v", err)
	}
	if !strings.Contains(dir, filepath.Join("lescolors", "images")) {
		t.Errorf("DefaultCacheDir() = %q, want lescolors/images suffix", dir)
	}
}
