package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// execute runs the root command with args against a config in dir.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	configPath, verbose, renderIndent, configForce = "", false, "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(dir, "config.json")))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRender_PrintsPayload(t *testing.T) {
	dir := t.TempDir()
	tpl := writeFile(t, dir, "msg.yaml", "text: hello\nattachments:\n  - callback_id: cb1\n    color: \"#ff0000\"\n")

	out, err := execute(t, dir, "render", tpl)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got["text"] != "hello" {
		t.Errorf("text = %v", got["text"])
	}
	if !strings.Contains(out, "\n  \"") {
		t.Errorf("expected default two-space indent, got:\n%s", out)
	}
}

func TestRender_CompactIndent(t *testing.T) {
	dir := t.TempDir()
	tpl := writeFile(t, dir, "msg.yaml", "text: hello\n")

	out, err := execute(t, dir, "render", "--indent", "none", tpl)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Count(strings.TrimSpace(out), "\n") != 0 {
		t.Errorf("expected single-line output, got:\n%s", out)
	}
}

func TestRender_InvalidTemplate(t *testing.T) {
	dir := t.TempDir()
	tpl := writeFile(t, dir, "msg.yaml", "attachments:\n  - image: nope\n")

	if _, err := execute(t, dir, "render", tpl); err == nil {
		t.Fatal("expected error for invalid template")
	}
}

func TestCheck_ReportsEachFile(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", "text: ok\n")
	bad := writeFile(t, dir, "bad.yaml", "attachments:\n  - color: \"\"\n    fields: [{title: k}]\n")

	out, err := execute(t, dir, "check", good, bad)
	if err == nil || !strings.Contains(err.Error(), "1 of 2") {
		t.Fatalf("expected 1 of 2 failure, got %v", err)
	}
	if !strings.Contains(out, "✓ "+good) {
		t.Errorf("missing success line for %s:\n%s", good, out)
	}
	if !strings.Contains(out, "✗ "+bad) {
		t.Errorf("missing failure line for %s:\n%s", bad, out)
	}
}

func TestCheck_MoreFilesThanWorkers(t *testing.T) {
	dir := t.TempDir()
	n := runtime.GOMAXPROCS(0)*2 + 3
	paths := make([]string, 0, n)
	for i := 0; i < n; i++ {
		body := fmt.Sprintf("text: msg %d\n", i)
		if i == n-1 {
			body = "attachments:\n  - thumbnail: nope\n"
		}
		paths = append(paths, writeFile(t, dir, fmt.Sprintf("t%02d.yaml", i), body))
	}

	out, err := execute(t, dir, append([]string{"check"}, paths...)...)
	want := fmt.Sprintf("1 of %d", n)
	if err == nil || !strings.Contains(err.Error(), want) {
		t.Fatalf("expected %q failure, got %v", want, err)
	}
	if got := strings.Count(out, "✓ "); got != n-1 {
		t.Errorf("expected %d success lines, got %d:\n%s", n-1, got, out)
	}
	if !strings.Contains(out, "✗ "+paths[n-1]) {
		t.Errorf("missing failure line for %s:\n%s", paths[n-1], out)
	}
}

func TestCheck_AllValid(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", "text: a\n")
	b := writeFile(t, dir, "b.yaml", "text: b\nresponse_type: in_channel\n")

	if _, err := execute(t, dir, "check", a, b); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t, dir, "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.json")); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if _, err := execute(t, dir, "config", "init"); err == nil {
		t.Fatal("expected error when config exists")
	}
	if _, err := execute(t, dir, "config", "init", "--force"); err != nil {
		t.Fatalf("config init --force: %v", err)
	}
}

func TestRender_UsesConfigFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.json", `{"builder": {"fallback": "plain"}, "output": {"indent": ""}}`)
	tpl := writeFile(t, dir, "msg.yaml", "attachments:\n  - {}\n")

	out, err := execute(t, dir, "render", tpl)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `"fallback":"plain"`) {
		t.Errorf("expected configured fallback in compact output, got:\n%s", out)
	}
}
