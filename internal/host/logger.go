/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

// Package host wires the interpreter core to SDL2 for rendering, audio, and
// input, and to sqweek/dialog for ROM selection. None of it is covered by
// the interpreter's testable properties; it exists so the domain stack's
// host-facing dependencies have a real caller.
package host

import (
	"context"
	"log/slog"
	"strings"
)

// Logger is a scrolling text buffer for the debug HUD's log window. It also
// implements slog.Handler, so a *slog.Logger built on it writes to the
// on-screen HUD. Neither cmd/c8emu nor App installs it as a handler: App's
// slog messages go to the logger cmd/c8emu passes in, not to this buffer.
type Logger struct {
	buf []string
	pos int
}

// NewLogger creates an empty Logger.
func NewLogger() *Logger {
	return &Logger{
		buf: make([]string, 0, 100),
		pos: 0,
	}
}

// Log appends a new line to the log.
func (l *Logger) Log(s ...string) {
	scroll := l.pos == len(l.buf)
	l.buf = append(l.buf, strings.Join(s, " "))
	if scroll {
		l.pos = len(l.buf)
	}
}

// Logln appends a new line, with a blank line prefixed as a section break.
func (l *Logger) Logln(s ...string) {
	scroll := l.pos == len(l.buf)
	l.buf = append(l.buf, "", strings.Join(s, " "))
	if scroll {
		l.pos = len(l.buf)
	}
}

// Window returns the n most recent lines up to the current scroll position.
func (l *Logger) Window(n int) []string {
	start := l.pos - n
	if start < 0 {
		start = 0
	}
	if start+n >= len(l.buf) {
		return l.buf[start:]
	}
	return l.buf[start : start+n]
}

// Home scrolls to the beginning of the log.
func (l *Logger) Home() {
	l.pos = 0
}

// End scrolls to the end of the log.
func (l *Logger) End() {
	l.pos = len(l.buf)
}

// ScrollUp scrolls the log back one line, clamped at the start.
func (l *Logger) ScrollUp() {
	l.pos--
	if l.pos < 0 {
		l.Home()
	}
}

// ScrollDown scrolls the log forward one line, clamped at the end.
func (l *Logger) ScrollDown(windowSize int) {
	l.pos++
	if l.pos <= windowSize {
		l.pos = windowSize + 1
	}
	if l.pos >= len(l.buf) {
		l.End()
	}
}

// Enabled always returns true: the HUD shows every level.
func (l *Logger) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle renders one slog.Record as a single HUD log line.
func (l *Logger) Handle(_ context.Context, r slog.Record) error {
	line := r.Level.String() + " " + r.Message
	r.Attrs(func(a slog.Attr) bool {
		line += " " + a.Key + "=" + a.Value.String()
		return true
	})
	l.Log(line)
	return nil
}

// WithAttrs and WithGroup return the same Logger: the HUD has no use for
// slog's attribute grouping, it only ever renders flattened lines.
func (l *Logger) WithAttrs([]slog.Attr) slog.Handler { return l }
func (l *Logger) WithGroup(string) slog.Handler       { return l }
