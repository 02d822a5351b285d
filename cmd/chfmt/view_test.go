package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/gorewood/chfmt/internal/output"
)

// timestampPattern matches the "YYYY-MM-DD HH:MM:SS.mmm" prefix.
var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}`)

// isolateEnv keeps a test from picking up the developer's real config
// directory or environment overrides.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CHFMT_CONFIG_HOME", t.TempDir())
	t.Setenv("CHFMT_WIDTH", "")
	t.Setenv("CHFMT_COLOR", "")
}

// writeInput writes content to a temp file and returns its path.
func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with args and captures stdout and stderr.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestView_DefaultShowsTimestamp(t *testing.T) {
	isolateEnv(t)
	path := writeInput(t, `[{"timestamp": 1700000000000, "display": "hello world"}]`)

	stdout, _, err := execute(t, path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !timestampPattern.MatchString(stdout) {
		t.Errorf("stdout = %q, want timestamp prefix", stdout)
	}
	if !strings.Contains(stdout, "  hello world") {
		t.Errorf("stdout = %q, want two-space separator before display text", stdout)
	}
}

func TestView_NoTimestamp(t *testing.T) {
	isolateEnv(t)
	path := writeInput(t, `[{"timestamp": 1700000000000, "display": "hello world"}]`)

	stdout, _, err := execute(t, path, "--notimestamp")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if stdout != "hello world\n" {
		t.Errorf("stdout = %q, want %q", stdout, "hello world\n")
	}
}

func TestView_BlankLineBetweenBlocks(t *testing.T) {
	isolateEnv(t)
	path := writeInput(t, `[{"display": "first"}, {"display": "second"}]`)

	stdout, _, err := execute(t, path, "--notimestamp")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if stdout != "first\n\nsecond\n" {
		t.Errorf("stdout = %q, want blocks separated by one blank line and none after the last", stdout)
	}
}

func TestView_TrimFlag(t *testing.T) {
	isolateEnv(t)
	path := writeInput(t, `{"display": "one two three four five"}`)

	stdout, _, err := execute(t, path, "--notimestamp", "--trim", "3")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if stdout != "one two three...\n" {
		t.Errorf("stdout = %q, want %q", stdout, "one two three...\n")
	}
}

func TestView_WidthFlag(t *testing.T) {
	isolateEnv(t)
	path := writeInput(t, `{"display": "aaaa bbbb cccc dddd eeee ffff gggg"}`)

	stdout, _, err := execute(t, path, "--notimestamp", "--width", "14")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, line := range strings.Split(strings.TrimRight(stdout, "\n"), "\n") {
		if len(line) > 14 {
			t.Errorf("line %q exceeds width 14", line)
		}
	}
}

func TestView_EnvWidth(t *testing.T) {
	isolateEnv(t)
	t.Setenv("CHFMT_WIDTH", "14")
	path := writeInput(t, `{"display": "aaaa bbbb cccc dddd"}`)

	stdout, _, err := execute(t, path, "--notimestamp")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(stdout, "\n") || len(strings.Split(stdout, "\n")) < 2 {
		t.Errorf("stdout = %q, want wrapping at CHFMT_WIDTH columns", stdout)
	}
}

func TestView_ConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHFMT_CONFIG_HOME", dir)
	t.Setenv("CHFMT_WIDTH", "")
	t.Setenv("CHFMT_COLOR", "")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("trim: 2\ntimestamp: false\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	path := writeInput(t, `{"display": "one two three four"}`)

	stdout, _, err := execute(t, path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if stdout != "one two...\n" {
		t.Errorf("stdout = %q, want config trim and timestamp defaults applied", stdout)
	}
}

func TestView_FlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHFMT_CONFIG_HOME", dir)
	t.Setenv("CHFMT_WIDTH", "")
	t.Setenv("CHFMT_COLOR", "")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("timestamp: false\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	path := writeInput(t, `{"display": "hello"}`)

	stdout, _, err := execute(t, path, "--timestamp")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !timestampPattern.MatchString(stdout) {
		t.Errorf("stdout = %q, want explicit --timestamp to override config", stdout)
	}
}

func TestView_JSONMode(t *testing.T) {
	isolateEnv(t)
	path := writeInput(t, `{"timestamp": 1000, "display": "hi"}`)

	stdout, _, err := execute(t, path, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var records []map[string]any
	if err := json.Unmarshal([]byte(stdout), &records); err != nil {
		t.Fatalf("stdout is not a JSON array: %v\n%s", err, stdout)
	}
	if len(records) != 1 || records[0]["display"] != "hi" {
		t.Errorf("records = %v, want one record with display 'hi'", records)
	}
}

func TestView_MissingFile(t *testing.T) {
	isolateEnv(t)

	_, stderr, err := execute(t, "/nonexistent/records.json")
	if err == nil {
		t.Fatal("Execute() error = nil, want failure for missing file")
	}
	if output.GetExitCode(err) != output.ExitFailure {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitFailure)
	}
	if !strings.Contains(stderr, "/nonexistent/records.json") {
		t.Errorf("stderr = %q, want offending path", stderr)
	}
}

func TestView_NoRecords(t *testing.T) {
	isolateEnv(t)
	path := writeInput(t, "hello world")

	stdout, stderr, err := execute(t, path)
	if err == nil {
		t.Fatal("Execute() error = nil, want failure for zero records")
	}
	if output.GetExitCode(err) != output.ExitFailure {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitFailure)
	}
	if !strings.Contains(stderr, "no records found") {
		t.Errorf("stderr = %q, want 'no records found'", stderr)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
}

func TestView_MalformedInputRecovered(t *testing.T) {
	isolateEnv(t)
	path := writeInput(t, "noise{\"display\":\"x\"}noise{\"display\":\"y\"}")

	stdout, _, err := execute(t, path, "--notimestamp")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if stdout != "x\n\ny\n" {
		t.Errorf("stdout = %q, want both recovered records", stdout)
	}
}

func TestView_InvalidTrim(t *testing.T) {
	isolateEnv(t)
	path := writeInput(t, `{"display": "hi"}`)

	_, stderr, err := execute(t, path, "--trim", "0")
	if err == nil {
		t.Fatal("Execute() error = nil, want failure for non-positive --trim")
	}
	if !strings.Contains(stderr, "--trim") {
		t.Errorf("stderr = %q, want mention of --trim", stderr)
	}
}

func TestView_MutuallyExclusiveTimestampFlags(t *testing.T) {
	isolateEnv(t)
	path := writeInput(t, `{"display": "hi"}`)

	_, _, err := execute(t, path, "--timestamp", "--notimestamp")
	if err == nil {
		t.Fatal("Execute() error = nil, want mutually exclusive flag error")
	}
}
