package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jacoelho/jed/internal/config"
	"github.com/jacoelho/jed/internal/exit"
)

const userDoc = `{"user":{"name":"Ann","age":30}}`

type run struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, cfg *config.Config, stdin string) run {
	t.Helper()

	if cfg.Color == "" {
		cfg.Color = config.ColorNever
	}
	if cfg.Format == "" {
		cfg.Format = config.FormatJSON
	}

	var stdout, stderr bytes.Buffer
	r := NewWithIO(cfg, strings.NewReader(stdin), &stdout, &stderr)
	code := r.Run(context.Background())
	return run{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeDoc(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readDoc(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestNoResultsAreLogged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.Config
		wantLog string
	}{
		{
			name:    "search",
			cfg:     config.Config{Command: config.CommandSearch, Args: []string{"email"}},
			wantLog: "msg=\"no matches\" key=email",
		},
		{
			name:    "match",
			cfg:     config.Config{Command: config.CommandMatch, Args: []string{"e.*"}},
			wantLog: "msg=\"no matches\"",
		},
		{
			name:    "query",
			cfg:     config.Config{Command: config.CommandQuery, Args: []string{"$.user.email"}},
			wantLog: "msg=\"no results\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := tt.cfg
			cfg.File = writeDoc(t, userDoc)

			got := execute(t, &cfg, "")
			if got.code != exit.CodeFailure {
				t.Fatalf("exit code = %d, want %d", got.code, exit.CodeFailure)
			}
			if got.stdout != "" {
				t.Errorf("stdout = %q, want empty", got.stdout)
			}
			if !strings.Contains(got.stderr, tt.wantLog) {
				t.Errorf("stderr = %q, want %q", got.stderr, tt.wantLog)
			}
		})
	}
}

func TestReadCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		doc        string
		cfg        config.Config
		wantCode   int
		wantStdout string
	}{
		{
			name:       "validate",
			doc:        userDoc,
			cfg:        config.Config{Command: config.CommandValidate},
			wantCode:   exit.CodeSuccess,
			wantStdout: "doc.json: valid\n",
		},
		{
			name:     "validate_trailing_input",
			doc:      userDoc + " {}",
			cfg:      config.Config{Command: config.CommandValidate},
			wantCode: exit.CodeFailure,
		},
		{
			name:       "print_subtree",
			doc:        userDoc,
			cfg:        config.Config{Command: config.CommandPrint, Subtree: "user"},
			wantCode:   exit.CodeSuccess,
			wantStdout: "{\n  \"name\": \"Ann\",\n  \"age\": 30\n}\n",
		},
		{
			name:       "print_yaml",
			doc:        userDoc,
			cfg:        config.Config{Command: config.CommandPrint, Format: config.FormatYAML},
			wantCode:   exit.CodeSuccess,
			wantStdout: "user:\n  name: Ann\n  age: 30\n",
		},
		{
			name:       "get",
			doc:        userDoc,
			cfg:        config.Config{Command: config.CommandGet, Args: []string{"user/name"}},
			wantCode:   exit.CodeSuccess,
			wantStdout: "\"Ann\"\n",
		},
		{
			name:     "get_missing",
			doc:      userDoc,
			cfg:      config.Config{Command: config.CommandGet, Args: []string{"user/email"}},
			wantCode: exit.CodeFailure,
		},
		{
			name:       "search",
			doc:        `{"a":{"b":1},"c":{"b":2}}`,
			cfg:        config.Config{Command: config.CommandSearch, Args: []string{"b"}},
			wantCode:   exit.CodeSuccess,
			wantStdout: "{\n  \"a/b\": 1,\n  \"c/b\": 2\n}\n",
		},
		{
			name:     "search_no_match",
			doc:      userDoc,
			cfg:      config.Config{Command: config.CommandSearch, Args: []string{"email"}},
			wantCode: exit.CodeFailure,
		},
		{
			name:       "match",
			doc:        `{"id": 1, "user_id": 2, "name": "x"}`,
			cfg:        config.Config{Command: config.CommandMatch, Args: []string{".*id"}},
			wantCode:   exit.CodeSuccess,
			wantStdout: "{\n  \"id\": 1,\n  \"user_id\": 2\n}\n",
		},
		{
			name:     "match_bad_pattern",
			doc:      userDoc,
			cfg:      config.Config{Command: config.CommandMatch, Args: []string{"("}},
			wantCode: exit.CodeFailure,
		},
		{
			name:       "contains",
			doc:        userDoc,
			cfg:        config.Config{Command: config.CommandContains, Args: []string{"An"}},
			wantCode:   exit.CodeSuccess,
			wantStdout: "true\n",
		},
		{
			name:       "contains_absent",
			doc:        userDoc,
			cfg:        config.Config{Command: config.CommandContains, Args: []string{"Bob"}},
			wantCode:   exit.CodeFailure,
			wantStdout: "false\n",
		},
		{
			name:       "query",
			doc:        `{"items": [{"n": 1}, {"n": 2}]}`,
			cfg:        config.Config{Command: config.CommandQuery, Args: []string{"$.items[*].n"}},
			wantCode:   exit.CodeSuccess,
			wantStdout: "[\n  1,\n  2\n]\n",
		},
		{
			name:     "malformed_document",
			doc:      `{"a":1,}`,
			cfg:      config.Config{Command: config.CommandPrint},
			wantCode: exit.CodeFailure,
		},
		{
			name:     "strict_rejects_trailing_input",
			doc:      `{} []`,
			cfg:      config.Config{Command: config.CommandPrint, Strict: true},
			wantCode: exit.CodeFailure,
		},
		{
			name:       "lenient_ignores_trailing_input",
			doc:        `{} []`,
			cfg:        config.Config{Command: config.CommandPrint},
			wantCode:   exit.CodeSuccess,
			wantStdout: "{\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := tt.cfg
			cfg.File = writeDoc(t, tt.doc)

			got := execute(t, &cfg, "")
			if got.code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d\nstderr: %s", got.code, tt.wantCode, got.stderr)
			}
			want := strings.ReplaceAll(tt.wantStdout, "doc.json", cfg.File)
			if diff := cmp.Diff(want, got.stdout); diff != "" {
				t.Errorf("stdout mismatch (-want +got):\n%s", diff)
			}
			if tt.wantCode == exit.CodeFailure && tt.wantStdout == "" && got.stderr == "" {
				t.Error("failure without a message on stderr")
			}
		})
	}
}

func TestEditToStdout(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, userDoc)
	got := execute(t, &config.Config{Command: config.CommandSet, File: path, Args: []string{"user/age", "31"}}, "")
	if got.code != exit.CodeSuccess {
		t.Fatalf("exit code = %d, stderr: %s", got.code, got.stderr)
	}

	want := "{\n  \"user\": {\n    \"name\": \"Ann\",\n    \"age\": 31\n  }\n}\n"
	if diff := cmp.Diff(want, got.stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
	if readDoc(t, path) != userDoc {
		t.Error("document file changed without --in-place")
	}
}

func TestEditInPlace(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, userDoc)
	cfg := &config.Config{Command: config.CommandCreate, File: path, Args: []string{"user/tags", `["a"]`}, InPlace: true}
	got := execute(t, cfg, "")
	if got.code != exit.CodeSuccess {
		t.Fatalf("exit code = %d, stderr: %s", got.code, got.stderr)
	}
	if got.stdout != "" {
		t.Errorf("stdout = %q, want empty", got.stdout)
	}
	if !strings.Contains(got.stderr, "saved") {
		t.Errorf("stderr = %q, want saved message", got.stderr)
	}

	want := "{\n  \"user\": {\n    \"name\": \"Ann\",\n    \"age\": 30,\n    \"tags\": [\n      \"a\"\n    ]\n  }\n}\n"
	if diff := cmp.Diff(want, readDoc(t, path)); diff != "" {
		t.Errorf("file mismatch (-want +got):\n%s", diff)
	}
}

func TestFailedEditWritesNothing(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, userDoc)
	cfg := &config.Config{Command: config.CommandSet, File: path, Args: []string{"user/missing", "1"}, InPlace: true}
	got := execute(t, cfg, "")
	if got.code != exit.CodeFailure {
		t.Fatalf("exit code = %d, want failure", got.code)
	}
	if !strings.Contains(got.stderr, "not found") {
		t.Errorf("stderr = %q, want not found message", got.stderr)
	}
	if readDoc(t, path) != userDoc {
		t.Error("document file changed by a failed edit")
	}
}

func TestEditOutputFile(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, `{"a": {"b": 1}}`)
	out := filepath.Join(t.TempDir(), "out.json")
	cfg := &config.Config{Command: config.CommandMove, File: path, Args: []string{"a/b", "c"}, Output: out, Subtree: "a"}
	got := execute(t, cfg, "")
	if got.code != exit.CodeSuccess {
		t.Fatalf("exit code = %d, stderr: %s", got.code, got.stderr)
	}
	if diff := cmp.Diff("{\n}\n", readDoc(t, out)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestDryRun(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, userDoc)
	cfg := &config.Config{Command: config.CommandSet, File: path, Args: []string{"user/age", "31"}, DryRun: true}
	got := execute(t, cfg, "")
	if got.code != exit.CodeSuccess {
		t.Fatalf("exit code = %d, stderr: %s", got.code, got.stderr)
	}

	for _, want := range []string{"--- " + path, "+++ " + path, "-    \"age\": 30", "+    \"age\": 31", "     \"name\": \"Ann\","} {
		if !strings.Contains(got.stdout, want) {
			t.Errorf("diff missing %q:\n%s", want, got.stdout)
		}
	}
	if readDoc(t, path) != userDoc {
		t.Error("dry run changed the document file")
	}
}

func TestStdin(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Command: config.CommandDelete, File: config.Stdin, Args: []string{"user"}}
	got := execute(t, cfg, userDoc)
	if got.code != exit.CodeSuccess {
		t.Fatalf("exit code = %d, stderr: %s", got.code, got.stderr)
	}
	if got.stdout != "{\n}\n" {
		t.Errorf("stdout = %q, want empty object", got.stdout)
	}
}

func writeScript(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "edit.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestApply(t *testing.T) {
	t.Parallel()

	good := "- op: set\n  path: user/age\n  value: 31\n- op: move\n  from: user/name\n  to: name\n"
	bad := "- op: delete\n  path: user/age\n- op: delete\n  path: user/missing\n"

	tests := []struct {
		name          string
		scripts       []string
		transactional bool
		wantCode      int
		wantFile      string
		wantReport    []string
	}{
		{
			name:       "success",
			scripts:    []string{good},
			wantCode:   exit.CodeSuccess,
			wantFile:   "{\n  \"user\": {\n    \"age\": 31\n  },\n  \"name\": \"Ann\"\n}\n",
			wantReport: []string{"#1 set user/age: Success", "#2 move user/name -> name: Success"},
		},
		{
			name:       "partial_failure_keeps_earlier_steps",
			scripts:    []string{bad},
			wantCode:   exit.CodeFailure,
			wantFile:   "{\n  \"user\": {\n    \"name\": \"Ann\"\n  }\n}\n",
			wantReport: []string{"#1 delete user/age: Success", "#2 delete user/missing: Failed"},
		},
		{
			name:          "transactional_failure_writes_nothing",
			scripts:       []string{good, bad},
			transactional: true,
			wantCode:      exit.CodeFailure,
			wantFile:      userDoc,
			wantReport:    []string{"Rolled back", "Scripts:         2 (1 failed)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeDoc(t, userDoc)
			var scripts []string
			for _, s := range tt.scripts {
				scripts = append(scripts, writeScript(t, s))
			}

			cfg := &config.Config{
				Command:       config.CommandApply,
				File:          path,
				Args:          scripts,
				InPlace:       true,
				Transactional: tt.transactional,
			}
			got := execute(t, cfg, "")
			if got.code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d\nstderr: %s", got.code, tt.wantCode, got.stderr)
			}
			if diff := cmp.Diff(tt.wantFile, readDoc(t, path)); diff != "" {
				t.Errorf("file mismatch (-want +got):\n%s", diff)
			}
			for _, want := range tt.wantReport {
				if !strings.Contains(got.stderr, want) {
					t.Errorf("report missing %q:\n%s", want, got.stderr)
				}
			}
		})
	}
}

func TestApplyBadScript(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, userDoc)
	cfg := &config.Config{Command: config.CommandApply, File: path, Args: []string{writeScript(t, "- op: copy\n")}, InPlace: true}
	got := execute(t, cfg, "")
	if got.code != exit.CodeFailure {
		t.Fatalf("exit code = %d, want failure", got.code)
	}
	if !strings.Contains(got.stderr, "unknown op") {
		t.Errorf("stderr = %q, want unknown op", got.stderr)
	}
	if readDoc(t, path) != userDoc {
		t.Error("document changed by an invalid script")
	}
}

func TestColorAlways(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, `{"a": 1}`)
	got := execute(t, &config.Config{Command: config.CommandPrint, File: path, Color: config.ColorAlways}, "")
	if got.code != exit.CodeSuccess {
		t.Fatalf("exit code = %d", got.code)
	}
	if !strings.Contains(got.stdout, "\x1b[") {
		t.Errorf("stdout = %q, want ANSI colors", got.stdout)
	}
}

func TestUseColorAutoWithoutTerminal(t *testing.T) {
	t.Parallel()

	if useColor(config.ColorAuto, &bytes.Buffer{}) {
		t.Error("useColor(auto, buffer) = true, want false")
	}
}

func TestLoggerOmitsTimeAndInfoLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, false)
	log.Info("saved", "file", "x.json")
	log.Debug("hidden")
	log.Error("boom")

	want := "msg=saved file=x.json\nlevel=ERROR msg=boom\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}
