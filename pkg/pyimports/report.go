package pyimports

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Entry pairs one input file with the import names extracted from it,
// in the order their statements appear in the source.
type Entry struct {
	Path    string
	Imports []string
}

// Report is the result of one scan. In mapping mode it preserves the
// input file order, which is why it is not a plain map: Go maps would
// serialize with sorted keys. In total mode the per-file structure is
// discarded in favor of one deduplicated, lexicographically sorted
// list across all files.
type Report struct {
	entries []Entry
	total   []string
	flat    bool
}

// Add appends a per-file result. Paths are expected to be unique; the
// aggregator feeds one entry per surviving input file.
func (r *Report) Add(path string, imports []string) {
	r.entries = append(r.entries, Entry{Path: path, Imports: imports})
}

// Entries returns the per-file results in input order. Nil in total mode.
func (r *Report) Entries() []Entry {
	if r.flat {
		return nil
	}

	return r.entries
}

// Total returns the flattened list, or nil outside total mode.
func (r *Report) Total() []string {
	if !r.flat {
		return nil
	}

	return r.total
}

// Collapse switches the report into total mode: all per-file results
// are flattened into one deduplicated, ascending-sorted list and the
// mapping structure is discarded.
func (r *Report) Collapse() {
	seen := make(map[string]struct{})
	flat := make([]string, 0)

	for _, e := range r.entries {
		for _, name := range e.Imports {
			if _, dup := seen[name]; dup {
				continue
			}

			seen[name] = struct{}{}
			flat = append(flat, name)
		}
	}

	sort.Strings(flat)

	r.entries = nil
	r.total = flat
	r.flat = true
}

// MarshalJSON encodes either shape compactly; callers that want
// indentation use a json.Encoder with SetIndent, which re-indents the
// whole document. Empty import lists encode as [], never null.
func (r *Report) MarshalJSON() ([]byte, error) {
	if r.flat {
		return json.Marshal(nonNil(r.total))
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, e := range r.entries {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(e.Path)
		if err != nil {
			return nil, fmt.Errorf("marshal path %q: %w", e.Path, err)
		}

		val, err := json.Marshal(nonNil(e.Imports))
		if err != nil {
			return nil, fmt.Errorf("marshal imports for %q: %w", e.Path, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML mirrors the JSON shapes with the same ordering guarantee,
// via an explicit mapping node.
func (r *Report) MarshalYAML() (any, error) {
	if r.flat {
		return nonNil(r.total), nil
	}

	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, e := range r.entries {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: e.Path}

		val := &yaml.Node{}

		err := val.Encode(nonNil(e.Imports))
		if err != nil {
			return nil, fmt.Errorf("encode imports for %q: %w", e.Path, err)
		}

		root.Content = append(root.Content, key, val)
	}

	return root, nil
}

// nonNil normalizes a nil slice to an empty one for serialization.
func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}

	return names
}
