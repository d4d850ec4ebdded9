// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"io"
	"regexp"
	"strings"
)

// Redaction is the placeholder written instead of a masked value.
const Redaction = "***"

// PIIFields lists the log fields masked by loggers built with [NewLogger].
var PIIFields = []string{"email", "password", "new_password", "reset_token", "session_id", "dsn"}

// redactingWriter masks the string values of selected JSON fields in every
// log line before forwarding it to the wrapped writer.
type redactingWriter struct {
	out     io.Writer
	pattern *regexp.Regexp
}

// NewRedactingWriter returns an io.Writer that replaces the string value of
// every top-level or nested JSON field named in fields with [Redaction].
// Field names match case-insensitively.
// When fields is empty the original writer is returned unchanged.
//
// Example:
//
//	{"email":"bob@example.com","level":"info"} -> {"email":"***","level":"info"}
func NewRedactingWriter(w io.Writer, fields ...string) io.Writer {
	if len(fields) == 0 {
		return w
	}

	quoted := make([]string, 0, len(fields))
	for _, f := range fields {
		quoted = append(quoted, regexp.QuoteMeta(f))
	}
	pattern := regexp.MustCompile(`(?i)"(` + strings.Join(quoted, "|") + `)":"(?:[^"\\]|\\.)*"`)

	return &redactingWriter{out: w, pattern: pattern}
}

// Write masks p and writes it to the underlying writer. It reports len(p) on
// success so zerolog does not treat the rewritten length as a short write.
func (r *redactingWriter) Write(p []byte) (int, error) {
	masked := r.pattern.ReplaceAll(p, []byte(`"$1":"`+Redaction+`"`))
	if _, err := r.out.Write(masked); err != nil {
		return 0, err
	}
	return len(p), nil
}
