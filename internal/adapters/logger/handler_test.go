package logger_test

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/pipbridge/internal/adapters/logger"
)

func newTestHandler(t *testing.T) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}), buf
}

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
		{name: "debug level filtered", level: slog.LevelDebug, msg: "debug message", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newTestHandler(t)
			slog.New(handler).Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	tests := []struct {
		name       string
		args       []any
		msg        string
		goldenName string
	}{
		{
			name:       "single attribute",
			args:       []any{slog.String("key", "value")},
			msg:        "single attr message",
			goldenName: "handler_attrs_single",
		},
		{
			name:       "multiple attributes",
			args:       []any{slog.String("a", "1"), slog.Int("b", 2)},
			msg:        "multi attr message",
			goldenName: "handler_attrs_multi",
		},
		{
			name:       "group attribute",
			args:       []any{slog.Group("g", slog.String("k", "v"))},
			msg:        "group attr message",
			goldenName: "handler_attrs_group",
		},
		{
			name:       "nested group",
			args:       []any{slog.Group("outer", slog.Group("inner", slog.String("k", "v")))},
			msg:        "nested group message",
			goldenName: "handler_attrs_nested_group",
		},
		{
			name:       "mixed attributes",
			args:       []any{slog.String("regular", "val"), slog.Group("g", slog.String("k", "v"))},
			msg:        "mixed attrs message",
			goldenName: "handler_attrs_mixed",
		},
		{
			name:       "empty value",
			args:       []any{slog.String("empty", "")},
			msg:        "empty value message",
			goldenName: "handler_attrs_empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newTestHandler(t)
			slog.New(handler).Info(tt.msg, tt.args...)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	handler, buf := newTestHandler(t)

	child := handler.WithAttrs([]slog.Attr{slog.String("key", "value")})
	slog.New(child).Info("single attr message")

	g := goldie.New(t)
	g.Assert(t, "handler_attrs_single", buf.Bytes())

	buf.Reset()
	slog.New(handler).Info("information message")
	assert.Equal(t, "information message\n", buf.String(), "parent handler must not inherit child attrs")
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	handler, buf := newTestHandler(t)

	slog.New(handler.WithGroup("req")).Info("grouped message", slog.Int("id", 7))

	g := goldie.New(t)
	g.Assert(t, "handler_with_group", buf.Bytes())
}

func TestPrettyHandler_WithGroup_Chained(t *testing.T) {
	handler, buf := newTestHandler(t)

	slog.New(handler.WithGroup("a").WithGroup("b")).Info("msg", slog.String("k", "v"))

	assert.Equal(t, "msg a.b.k=v\n", buf.String())
}

func TestPrettyHandler_Subjects(t *testing.T) {
	fixtureDir, err := filepath.Abs("testdata")
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	t.Chdir(dir)
	handler, buf := newTestHandler(t)

	slog.New(handler).Info("added",
		slog.Int("count", 2),
		slog.String("path", filepath.Join(dir, "Pipfile")),
		slog.String("section", "dev-packages"),
		slog.String("package", "pytest"),
	)

	g := goldie.New(t, goldie.WithFixtureDir(fixtureDir))
	g.Assert(t, "handler_subjects", buf.Bytes())
}

func TestPrettyHandler_SubjectPaths(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	tests := []struct {
		name string
		attr slog.Attr
		want string
	}{
		{name: "below cwd", attr: slog.String("dir", filepath.Join(dir, "api")), want: "locked api\n"},
		{name: "cwd itself", attr: slog.String("dir", dir), want: "locked .\n"},
		{name: "outside cwd", attr: slog.String("path", "/elsewhere/Pipfile"), want: "locked /elsewhere/Pipfile\n"},
		{name: "relative", attr: slog.String("path", "sub/Pipfile"), want: "locked sub/Pipfile\n"},
		{name: "empty", attr: slog.String("section", ""), want: "locked\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newTestHandler(t)
			slog.New(handler).Info("locked", tt.attr)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_SubjectsInGroupStayKeyed(t *testing.T) {
	handler, buf := newTestHandler(t)

	slog.New(handler.WithGroup("span")).Info("lock", slog.String("package", "six"))

	assert.Equal(t, "lock span.package=six\n", buf.String())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	handler, _ := newTestHandler(t)

	assert.False(t, handler.Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelError))
}
