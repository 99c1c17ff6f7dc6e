package sequence

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/logger"
)

func traceInto(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cfg := &logger.Config{Level: "debug", Format: logger.FormatJSON}
	SetTracer(logger.NewWithWriter(cfg, "seqkit-test", &buf).WithComponent(ComponentName))
	t.Cleanup(func() { SetTracer(nil) })
	return &buf
}

func TestTracing_LogsFusionDecisions(t *testing.T) {
	buf := traceInto(t)

	w := Of(1, 2, 3, 4).Pipe(
		Where(func(x int) bool { return x > 1 }),
		Where(func(x int) bool { return x < 4 }),
		Distinct[int](),
		Distinct[int](),
	)
	Apply(Apply(w, Reverse[int]()), Reverse[int]())
	Apply(Of(1, 2), Count[int]())

	out := buf.String()
	for _, want := range []string{
		`"operation":"where"`,
		`"message":"fused"`,
		`"operation":"distinct"`,
		`"message":"no-op"`,
		`"reason":"already distinct"`,
		`"count":2`,
		`"message":"cancelled"`,
		`"message":"direct count"`,
		`"component":"sequence"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in trace output:\n%s", want, out)
		}
	}
}

func TestTracing_OffByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&logger.Config{Level: "debug", Format: logger.FormatJSON}, "seqkit-test", &buf)
	SetTracer(l)
	SetTracer(nil)

	Of(1, 2).Pipe(Where(func(int) bool { return true }), Where(func(int) bool { return true }))
	if buf.Len() != 0 {
		t.Errorf("expected no trace output once disabled, got %q", buf.String())
	}
	if _, ok := logger.Lookup(ComponentName); ok {
		t.Error("expected the engine logger to be unregistered")
	}
}

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { SetTracer(nil) })

	if err := Configure(Settings{Trace: true, Logging: logger.Config{Output: "discard"}}); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if !tracing.Load() {
		t.Error("expected tracing to be enabled")
	}
	if _, ok := logger.Lookup(ComponentName); !ok {
		t.Error("expected the engine logger to be registered")
	}

	if err := Configure(Settings{}); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if tracing.Load() {
		t.Error("expected tracing to be disabled")
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr string
	}{
		{"defaults", Settings{}, ""},
		{"trace defaults to debug", Settings{Trace: true}, ""},
		{"trace at info", Settings{Trace: true, Logging: logger.Config{Level: "info"}}, "logging.level"},
		{"bad format", Settings{Logging: logger.Config{Format: "xml"}}, "logging.format"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.s
			s.ApplyDefaults()
			err := s.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sequence.yml")
	content := "trace: true\nlogging:\n  output: discard\n  format: json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings("seqtest-load", config.WithConfigFile(path))
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if !s.Trace || s.Logging.Level != "debug" || s.Logging.Format != "json" {
		t.Errorf("unexpected settings %+v", s)
	}

	t.Cleanup(func() { SetTracer(nil) })
	if err := Setup("seqtest-load", config.WithConfigFile(path)); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if !tracing.Load() {
		t.Error("expected Setup to enable tracing")
	}
}

func TestLoadSettings_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sequence.yml")
	if err := os.WriteFile(path, []byte("trace: true\nlogging:\n  level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings("seqtest-invalid", config.WithConfigFile(path)); err == nil {
		t.Fatal("expected trace at warn level to be rejected")
	}
}
