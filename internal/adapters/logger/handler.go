package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/pipbridge/internal/ui/output"
	"go.trai.ch/pipbridge/internal/ui/style"
)

// subjectKeys name what a record is about: a package, its Pipfile section, and the
// file or project directory involved. They print right after the message, without
// their keys, ahead of the remaining key=value pairs.
var subjectKeys = []string{"package", "section", "path", "dir"}

// PrettyHandler is a custom slog.Handler that produces human-readable,
// colored output using the shared UI components.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	base  string
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	base, _ := os.Getwd()

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
		base:  base,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var msg string
	var color termenv.Color

	switch {
	case r.Level >= slog.LevelError:
		msg = style.Cross + " " + r.Message
		color = termenv.RGBColor(string(style.Red))
	case r.Level >= slog.LevelWarn:
		msg = style.Warning + " " + r.Message
		color = termenv.RGBColor(string(style.Yellow))
	default:
		msg = r.Message
		color = termenv.RGBColor(string(style.Slate))
	}

	subjects := make(map[string]string, len(subjectKeys))
	var rest []string
	collect := func(attr slog.Attr) bool {
		if h.group == "" && slices.Contains(subjectKeys, attr.Key) {
			subjects[attr.Key] = h.formatSubject(attr)
		} else {
			rest = append(rest, formatAttr(h.group, attr))
		}
		return true
	}
	for _, attr := range h.attrs {
		collect(attr)
	}
	r.Attrs(collect)

	parts := []string{msg}
	for _, key := range subjectKeys {
		if subject := subjects[key]; subject != "" {
			parts = append(parts, subject)
		}
	}
	msg = strings.Join(append(parts, rest...), " ")

	styled := h.out.String(msg).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		base:  h.base,
		attrs: newAttrs,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		base:  h.base,
		attrs: h.attrs,
		group: group,
	}
}

// formatSubject renders a section as "[name]" and shortens paths below the working directory.
func (h *PrettyHandler) formatSubject(attr slog.Attr) string {
	value := attr.Value.String()
	if value == "" {
		return ""
	}

	switch attr.Key {
	case "section":
		return "[" + value + "]"
	case "path", "dir":
		if h.base == "" || !filepath.IsAbs(value) {
			return value
		}
		rel, err := filepath.Rel(h.base, value)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return value
		}
		return rel
	default:
		return value
	}
}

// formatAttr formats a single attribute for output.
// If a group is set, the key is prefixed with the group name.
func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	if attr.Value.Kind() == slog.KindGroup {
		parts := make([]string, 0, len(attr.Value.Group()))
		for _, a := range attr.Value.Group() {
			parts = append(parts, formatAttr(key, a))
		}
		return strings.Join(parts, " ")
	}
	return key + "=" + attr.Value.String()
}
