package models

import "sort"

// Record is one raw capture entry: field names mapped to scalar values,
// with some fields themselves nested mappings (e.g. an "acceleration"
// field holding x/y/z components).
type Record map[string]any

// Flatten folds nested mappings into dot-joined paths, so
// {"acceleration": {"z": 3}} becomes {"acceleration.z": 3}.
// Scalar fields pass through unchanged; a record with no nested
// mappings comes back as an equal copy.
func (r Record) Flatten() Record {
	out := make(Record, len(r))
	flattenInto(out, "", map[string]any(r))
	return out
}

// FlatPaths returns the record's flattened field paths in sorted order.
// Mapping iteration order is undefined in Go, so sorting is what keeps
// the tabular column layout stable run to run.
func (r Record) FlatPaths() []string {
	flat := r.Flatten()
	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func flattenInto(dst Record, prefix string, src map[string]any) {
	for key, val := range src {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		// YAML decoding into a Record propagates the named map type to
		// nested mappings, so both shapes occur in practice.
		switch nested := val.(type) {
		case map[string]any:
			flattenInto(dst, path, nested)
		case Record:
			flattenInto(dst, path, map[string]any(nested))
		default:
			dst[path] = val
		}
	}
}
