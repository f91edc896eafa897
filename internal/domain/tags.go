package domain

import (
	"bytes"
	"encoding/json"
)

// flagValue marks a tag written without a value (or with an empty value).
const flagValue = "true"

// Tags is an ordered tag mapping. Keys keep the order of their first
// occurrence; setting an existing key overwrites its value in place
// (last-wins). A tag without a value is stored as a boolean flag.
type Tags struct {
	keys []string
	vals map[string]string
}

// Set stores value under key. An empty value records a boolean flag.
func (t *Tags) Set(key, value string) {
	if key == "" {
		return
	}
	if value == "" {
		value = flagValue
	}
	if t.vals == nil {
		t.vals = make(map[string]string)
	}
	if _, ok := t.vals[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.vals[key] = value
}

// Get returns the value stored under key, or "" when absent. Flags
// report "true".
func (t Tags) Get(key string) string {
	return t.vals[key]
}

// Has reports whether key is present, as a flag or with a value.
func (t Tags) Has(key string) bool {
	_, ok := t.vals[key]
	return ok
}

// Keys returns the tag names in first-seen order.
func (t Tags) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of distinct tag names.
func (t Tags) Len() int {
	return len(t.keys)
}

// Clone returns an independent copy.
func (t Tags) Clone() Tags {
	var out Tags
	for _, k := range t.keys {
		out.Set(k, t.vals[k])
	}
	return out
}

// Merge applies every tag of other onto t, last-wins on collisions.
func (t *Tags) Merge(other Tags) {
	for _, k := range other.keys {
		t.Set(k, other.vals[k])
	}
}

// MarshalJSON encodes tags as an object in first-seen key order. Flags
// encode as boolean true, valued tags as strings.
func (t Tags) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		if v := t.vals[k]; v == flagValue {
			buf.WriteString("true")
		} else {
			val, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
