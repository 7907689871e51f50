package header

import "strings"

type entry struct {
	name  string
	value string
}

// Headers is the header set of one HTTP message. Lookup is
// case-insensitive while the case supplied on first insertion is kept
// for wire output. Backed by an ordered slice so serialization is
// deterministic.
type Headers struct {
	entries []entry
}

func New() *Headers {
	return &Headers{}
}

// Set replaces the value of an existing header matched without regard
// to case, or appends a new one. The original name casing survives a
// replace.
func (h *Headers) Set(name string, value string) {
	for i := range h.entries {
		if strings.EqualFold(h.entries[i].name, name) {
			h.entries[i].value = value
			return
		}
	}
	h.entries = append(h.entries, entry{name: name, value: value})
}

// Get looks the header up case-insensitively.
func (h *Headers) Get(name string) (string, bool) {
	for i := range h.entries {
		if strings.EqualFold(h.entries[i].name, name) {
			return h.entries[i].value, true
		}
	}
	return "", false
}

// Remove deletes the header matched case-insensitively, if present.
func (h *Headers) Remove(name string) {
	for i := range h.entries {
		if strings.EqualFold(h.entries[i].name, name) {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return
		}
	}
}

// Len reports the number of stored headers.
func (h *Headers) Len() int {
	return len(h.entries)
}

// Each calls fn for every header in insertion order.
func (h *Headers) Each(fn func(name, value string)) {
	for i := range h.entries {
		fn(h.entries[i].name, h.entries[i].value)
	}
}

// Finalize renders the "name: value" block in insertion order,
// terminated by the blank line that separates headers from the body.
func (h *Headers) Finalize() []byte {
	size := 2
	for i := range h.entries {
		size += len(h.entries[i].name) + 2 + len(h.entries[i].value) + 2
	}

	buf := make([]byte, 0, size)
	for i := range h.entries {
		buf = append(buf, h.entries[i].name...)
		buf = append(buf, ':', ' ')
		buf = append(buf, h.entries[i].value...)
		buf = append(buf, '\r', '\n')
	}
	buf = append(buf, '\r', '\n')
	return buf
}
