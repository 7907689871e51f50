package dict

// MultiDict is an ordered string-keyed mapping where each key may hold
// more than one value. It backs URL query arguments and submitted form
// fields, both of which allow repeated keys (checkbox groups, repeated
// query parameters) whose order matters.
type MultiDict struct {
	keys   []string
	values map[string][]string
}

func New() *MultiDict {
	return &MultiDict{
		values: make(map[string][]string),
	}
}

// Add appends value to the list stored under key, creating the key on
// first use. Existing keys keep their position.
func (md *MultiDict) Add(key string, value string) {
	if _, ok := md.values[key]; !ok {
		md.keys = append(md.keys, key)
	}
	md.values[key] = append(md.values[key], value)
}

// GetAll returns every value added under key, in insertion order. An
// absent key yields nil, never an error.
func (md *MultiDict) GetAll(key string) []string {
	return md.values[key]
}

// GetFirst returns the first value added under key.
func (md *MultiDict) GetFirst(key string) (string, bool) {
	vals, ok := md.values[key]
	if !ok {
		return "", false
	}
	return vals[0], true
}

// Keys returns the keys in first-insertion order.
func (md *MultiDict) Keys() []string {
	return md.keys
}

// Len reports the number of distinct keys.
func (md *MultiDict) Len() int {
	return len(md.keys)
}
