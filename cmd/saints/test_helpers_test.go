package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path, destDir, baseURL string) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
dest_dir = %q

[site]
base_url = %q
timeout_seconds = 30

[logging]
level = "error"

[[catalog.volume]]
name = "Volume 1"
slug = "saints-v1"
`, destDir, baseURL)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func statePage(t *testing.T, store map[string]any) string {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"reader": map[string]any{"contentStore": store}})
	if err != nil {
		t.Fatal(err)
	}
	return fmt.Sprintf(`<html><script>window.__INITIAL_STATE__="%s";</script></html>`,
		base64.StdEncoding.EncodeToString(raw))
}

// newFakeSite serves a single volume with one downloadable chapter.
func newFakeSite(t *testing.T) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/study/history/saints-v1":
			io.WriteString(w, `<html><a href="/study/history/saints-v1/01-ask-in-faith?lang=eng">Ch 1</a></html>`)
		case "/study/history/saints-v1/01-ask-in-faith":
			io.WriteString(w, statePage(t, map[string]any{
				"/history/saints-v1/01-ask-in-faith": map[string]any{
					"meta": map[string]any{
						"title": "1 Ask in Faith",
						"audio": []map[string]any{{"variant": "male", "mediaUrl": srv.URL + "/audio/01.mp3"}},
					},
				},
			}))
		case "/audio/01.mp3":
			io.WriteString(w, "mp3 bytes")
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
