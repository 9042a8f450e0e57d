// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes single-line records
// to a terminal, coloring the level and message according to severity.
// Records below [UserLevel] are dropped.
type Handler struct {
	out    *termenv.Output
	mu     *sync.Mutex
	pre    string
	groups []string
}

// NewHandler returns a new [Handler] writing to the given writer.
// Colors are only emitted when the writer is a terminal that supports them.
func NewHandler(w io.Writer) *Handler {
	return &Handler{
		out: termenv.NewOutput(w),
		mu:  &sync.Mutex{},
	}
}

// SetDefaultLogger sets the default logger to be a [Handler] writing
// to [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	sb := &strings.Builder{}
	sb.WriteString(h.levelString(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(h.out.String(r.Message).Bold().String())
	sb.WriteString(h.pre)
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(sb, prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	sb := &strings.Builder{}
	sb.WriteString(h.pre)
	prefix := strings.Join(h.groups, ".")
	for _, a := range attrs {
		writeAttr(sb, prefix, a)
	}
	nh.pre = sb.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

// levelString returns the colored level label for the given level.
func (h *Handler) levelString(level slog.Level) string {
	var clr string
	switch {
	case level >= slog.LevelError:
		clr = "#ff5555"
	case level >= slog.LevelWarn:
		clr = "#f1fa8c"
	case level >= slog.LevelInfo:
		clr = "#8be9fd"
	default:
		clr = "#6272a4"
	}
	return h.out.String(level.String()).Foreground(h.out.Color(clr)).String()
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(sb, key, ga)
		}
		return
	}
	fmt.Fprintf(sb, " %s=%v", key, a.Value.Any())
}
