package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EmailKey is the field name whose values are obfuscated before being written.
const EmailKey = "email"

type redactingCore struct {
	zapcore.Core
	keep int
}

// NewRedactingCore wraps core so that string fields named "email" are
// obfuscated, keeping only the first keep characters of the local part.
func NewRedactingCore(core zapcore.Core, keep int) zapcore.Core {
	return &redactingCore{Core: core, keep: keep}
}

func (c *redactingCore) With(fields []zapcore.Field) zapcore.Core {
	return &redactingCore{Core: c.Core.With(c.redact(fields)), keep: c.keep}
}

func (c *redactingCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *redactingCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	return c.Core.Write(ent, c.redact(fields))
}

func (c *redactingCore) redact(fields []zapcore.Field) []zapcore.Field {
	var out []zapcore.Field
	for i, f := range fields {
		if f.Key != EmailKey || f.Type != zapcore.StringType {
			continue
		}
		if out == nil {
			out = make([]zapcore.Field, len(fields))
			copy(out, fields)
		}
		out[i] = zap.String(f.Key, ObfuscateEmail(f.String, c.keep))
	}
	if out == nil {
		return fields
	}
	return out
}

// ObfuscateEmail masks the local part of an email after its first keep characters.
//
//	ObfuscateEmail("bob@example.net", 2) == "bo*@example.net"
func ObfuscateEmail(email string, keep int) string {
	local, domain, found := strings.Cut(email, "@")
	runes := []rune(local)
	if keep < 0 {
		keep = 0
	}
	if keep > len(runes) {
		keep = len(runes)
	}

	masked := string(runes[:keep]) + strings.Repeat("*", len(runes)-keep)
	if !found {
		return masked
	}
	return masked + "@" + domain
}
