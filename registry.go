package mlog

import (
	"math/rand/v2"
	"strings"
	"sync"
)

// sourceStyle is the registered rendering of a source: the plain color tag
// and the pre-rendered colorized display string.
type sourceStyle struct {
	tag     string
	display string
}

// Registry maps source names to display colors and owns the current
// default source. Invariant: the registry is never empty and the default
// source is always a member of the known set.
type Registry struct {
	mu            sync.RWMutex
	styles        map[string]sourceStyle
	defaultSource string
}

// newRegistry creates a registry pre-populated with the built-in default
// source.
func newRegistry() *Registry {
	r := &Registry{
		styles: make(map[string]sourceStyle),
	}
	r.register(DefaultSource, "CYAN")
	r.defaultSource = DefaultSource
	return r
}

// normalizeSource canonicalizes a source name.
func normalizeSource(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Add registers a source. An invalid or already-taken color hint is
// replaced with an unused palette color, falling back to the dimmed tag
// when the palette is exhausted. Adding an existing source re-registers it.
func (r *Registry) Add(name, colorHint string) {
	name = normalizeSource(name)
	if name == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.register(name, colorHint)
}

// register assumes r.mu is held.
func (r *Registry) register(name, colorHint string) {
	tag := strings.ToUpper(strings.TrimSpace(colorHint))

	_, valid := colorCodes[tag]
	if !valid || tag == "RESET" || tag == "BOLD" || r.tagTaken(tag) {
		tag = r.pickUnusedTag()
	}

	r.styles[name] = sourceStyle{
		tag:     tag,
		display: colorizeSource(name, tag),
	}
}

// tagTaken reports whether a color tag is already assigned to a source.
func (r *Registry) tagTaken(tag string) bool {
	for _, style := range r.styles {
		if style.tag == tag {
			return true
		}
	}
	return false
}

// pickUnusedTag selects a random unassigned palette color, or the dimmed
// fallback when none remain.
func (r *Registry) pickUnusedTag() string {
	var available []string
	for _, tag := range sourcePalette {
		if !r.tagTaken(tag) {
			available = append(available, tag)
		}
	}
	if len(available) == 0 {
		return fallbackColorTag
	}
	return available[rand.IntN(len(available))]
}

// Remove deletes a source and its color mapping. Removing the default
// source promotes an arbitrary remaining source; removing the last source
// reinitializes the registry to the built-in default.
func (r *Registry) Remove(name string) {
	name = normalizeSource(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.styles, name)

	if len(r.styles) == 0 {
		r.register(DefaultSource, "CYAN")
		r.defaultSource = DefaultSource
		return
	}

	if name == r.defaultSource {
		for remaining := range r.styles {
			r.defaultSource = remaining
			break
		}
	}
}

// SetDefault registers the source if unknown, then marks it default.
func (r *Registry) SetDefault(name, colorHint string) {
	name = normalizeSource(name)
	if name == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, known := r.styles[name]; !known {
		r.register(name, colorHint)
	}
	r.defaultSource = name
}

// Default returns the current default source name.
func (r *Registry) Default() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultSource
}

// Known returns a copy of the known source names.
func (r *Registry) Known() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	return names
}

// Contains reports whether a source is registered.
func (r *Registry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, known := r.styles[normalizeSource(name)]
	return known
}

// Display returns the rendered form of a source name. Unknown sources get
// a generic dimmed bold rendering instead of an error.
func (r *Registry) Display(name string, colorize bool) string {
	if !colorize {
		return name
	}

	r.mu.RLock()
	style, known := r.styles[name]
	r.mu.RUnlock()

	if known {
		return style.display
	}
	return ansiDimmed + ansiBold + name + ansiReset
}

// Tag returns the plain color tag assigned to a source, with the fallback
// tag for unknown sources.
func (r *Registry) Tag(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if style, known := r.styles[normalizeSource(name)]; known {
		return style.tag
	}
	return fallbackColorTag
}
