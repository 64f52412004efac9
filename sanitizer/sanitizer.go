// Package sanitizer provides a fluent and composable interface for
// sanitizing log lines before they reach a sink, using bitwise filter
// flags and transforms.
package sanitizer

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Filter flags for character matching
const (
	FilterNonPrintable uint64 = 1 << iota // Matches runes not classified as printable by strconv.IsPrint
	FilterControl                         // Matches control characters (unicode.IsControl)
	FilterNewline                         // Matches '\n' and '\r', which would split a log line
)

// Transform flags for character transformation
const (
	TransformStrip     uint64 = 1 << iota // Removes the character
	TransformHexEncode                    // Encodes the character's UTF-8 bytes as "<XXYY>"
	TransformSpace                        // Replaces the character with a single space
)

// PolicyPreset defines pre-configured sanitization policies
type PolicyPreset string

const (
	PolicyConsole PolicyPreset = "console" // Passthrough, terminals render escapes themselves
	PolicyFile    PolicyPreset = "file"    // ANSI escapes stripped, other non-printables hex-encoded
)

// rule represents a single sanitization rule
type rule struct {
	filter    uint64
	transform uint64
}

// policyRules contains pre-configured rules for each policy.
// ANSI escape stripping is sequence-based and handled separately, before
// the rune rules run.
var policyRules = map[PolicyPreset][]rule{
	PolicyConsole: {},
	PolicyFile: {
		{filter: FilterNewline, transform: TransformSpace},
		{filter: FilterNonPrintable, transform: TransformHexEncode},
	},
}

// filterCheckers maps individual filter flags to their check functions
var filterCheckers = map[uint64]func(rune) bool{
	FilterNonPrintable: func(r rune) bool { return !strconv.IsPrint(r) },
	FilterControl:      unicode.IsControl,
	FilterNewline:      func(r rune) bool { return r == '\n' || r == '\r' },
}

// Sanitizer provides chainable text sanitization
type Sanitizer struct {
	rules     []rule
	stripANSI bool
	buf       []byte
}

// New creates a new Sanitizer instance
func New() *Sanitizer {
	return &Sanitizer{
		rules: []rule{},
		buf:   make([]byte, 0, 256),
	}
}

// Rule adds a custom rule to the sanitizer (appended, earliest rule applies first)
func (s *Sanitizer) Rule(filter uint64, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy applies a pre-configured policy to the sanitizer (appended)
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	if rules, ok := policyRules[preset]; ok {
		s.rules = append(s.rules, rules...)
	}
	if preset == PolicyFile {
		s.stripANSI = true
	}
	return s
}

// Sanitize applies all configured rules to the input string
func (s *Sanitizer) Sanitize(data string) string {
	if s.stripANSI {
		data = StripANSI(data)
	}

	if len(s.rules) == 0 {
		return data
	}

	// Reset buffer
	s.buf = s.buf[:0]

	// Process each rune
	for _, r := range data {
		matched := false
		// Check rules in order (first match wins)
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				applyTransform(&s.buf, r, rl.transform)
				matched = true
				break
			}
		}
		// If no rule matched, append original rune
		if !matched {
			s.buf = utf8.AppendRune(s.buf, r)
		}
	}

	return string(s.buf)
}

// StripANSI removes ANSI escape sequences (ESC followed by a CSI sequence
// or a single final byte) from a string. Unterminated sequences are
// dropped through the end of input.
func StripANSI(data string) string {
	esc := strings.IndexByte(data, '\x1b')
	if esc < 0 {
		return data
	}

	var b strings.Builder
	b.Grow(len(data))

	for i := 0; i < len(data); {
		c := data[i]
		if c != '\x1b' {
			b.WriteByte(c)
			i++
			continue
		}

		i++
		if i >= len(data) {
			break
		}

		if data[i] == '[' {
			// CSI sequence: parameters then a final byte in 0x40..0x7e
			i++
			for i < len(data) {
				final := data[i]
				i++
				if final >= 0x40 && final <= 0x7e {
					break
				}
			}
		} else {
			// Two-byte escape
			i++
		}
	}

	return b.String()
}

// matchesFilter checks if a rune matches any filter in the mask
func matchesFilter(r rune, filterMask uint64) bool {
	for flag, checker := range filterCheckers {
		if (filterMask&flag) != 0 && checker(r) {
			return true
		}
	}
	return false
}

// applyTransform applies the specified transform to the buffer
func applyTransform(buf *[]byte, r rune, transformMask uint64) {
	switch {
	case (transformMask & TransformStrip) != 0:
		// Do nothing (strip)

	case (transformMask & TransformSpace) != 0:
		*buf = append(*buf, ' ')

	case (transformMask & TransformHexEncode) != 0:
		var runeBytes [utf8.UTFMax]byte
		n := utf8.EncodeRune(runeBytes[:], r)
		*buf = append(*buf, '<')
		*buf = append(*buf, hex.EncodeToString(runeBytes[:n])...)
		*buf = append(*buf, '>')
	}
}
