package mlog

import (
	"bytes"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/lixenwraith/mlog/sanitizer"
)

// serializer renders buffered entries through the configured template.
// It is owned by the drain worker goroutine and reuses its buffer.
type serializer struct {
	buf []byte
	san *sanitizer.Sanitizer
}

// newSerializer creates a serializer instance.
func newSerializer() *serializer {
	return &serializer{
		buf: make([]byte, 0, 256),
		san: sanitizer.New().Policy(sanitizer.PolicyFile),
	}
}

// reset clears the serializer buffer for reuse.
func (s *serializer) reset() {
	s.buf = s.buf[:0]
}

// render substitutes the entry fields into the format template and
// returns the newline-terminated line. Color is applied only for console
// emission with colorization enabled; file output additionally sanitizes
// the message so escape codes never reach persisted files.
func (s *serializer) render(cfg *Config, reg *Registry, entry logEntry, fileMode bool) []byte {
	s.reset()

	colorize := !fileMode && cfg.EnableColor

	message := entry.Message
	if fileMode {
		message = s.san.Sanitize(message)
	}

	format := cfg.Format
	for {
		open := strings.IndexByte(format, '{')
		if open < 0 {
			s.buf = append(s.buf, format...)
			break
		}
		end := strings.IndexByte(format[open:], '}')
		if end < 0 {
			s.buf = append(s.buf, format...)
			break
		}
		end += open

		s.buf = append(s.buf, format[:open]...)

		switch format[open+1 : end] {
		case "asctime":
			s.buf = append(s.buf, entry.Timestamp...)
		case "source":
			s.buf = append(s.buf, reg.Display(entry.Source, colorize)...)
		case "levelname":
			s.buf = append(s.buf, levelDisplay(entry.Level, colorize)...)
		case "message":
			s.buf = append(s.buf, message...)
		default:
			// Unknown placeholders pass through literally
			s.buf = append(s.buf, format[open:end+1]...)
		}

		format = format[end+1:]
	}

	s.buf = append(s.buf, '\n')
	return s.buf
}

// dumpValue renders an arbitrary Go value for logging. Plain strings pass
// through; everything else is delegated to spew with a compact,
// log-friendly configuration.
func dumpValue(v any) string {
	if str, ok := v.(string); ok {
		return str
	}

	var b bytes.Buffer
	dumper := &spew.ConfigState{
		Indent:                  " ",
		MaxDepth:                10,
		DisablePointerAddresses: true, // Cleaner for logs
		DisableCapacities:       true, // Less noise
		SortKeys:                true, // Consistent map output
	}
	dumper.Fdump(&b, v)

	// Trim trailing new line added by spew
	return string(bytes.TrimSpace(b.Bytes()))
}
