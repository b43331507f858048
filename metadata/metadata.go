// Package metadata reads embedded media metadata into a uniform
// group/key/value tree. Each media container gets its own Source; the
// renaming engine only ever sees the Tree.
package metadata

import (
	"fmt"
	"sort"
	"strings"
)

// Tree maps a metadata group (EXIF IFD, video stream tags) to its
// key/value entries. Values are kept as the decoder's string rendering.
type Tree map[string]map[string]string

// Source probes a file for its metadata tree. Probe fails with a
// *DecodeError when the file cannot be read or decoded.
type Source interface {
	Probe(path string) (Tree, error)
}

// Set stores a value, creating the group on first use.
func (t Tree) Set(group, key, value string) {
	g, ok := t[group]
	if !ok {
		g = make(map[string]string)
		t[group] = g
	}
	g[key] = value
}

// Lookup returns the value for key within group.
func (t Tree) Lookup(group, key string) (string, bool) {
	g, ok := t[group]
	if !ok {
		return "", false
	}
	v, ok := g[key]
	return v, ok
}

// Find resolves a filter-style key. "Group.Key" addresses one group
// directly; a bare key is searched across all groups in sorted group
// order so that lookups stay deterministic.
func (t Tree) Find(key string) (string, bool) {
	if group, rest, ok := strings.Cut(key, "."); ok {
		return t.Lookup(group, rest)
	}
	for _, group := range t.Groups() {
		if v, ok := t[group][key]; ok {
			return v, true
		}
	}
	return "", false
}

// Groups returns the group names in sorted order.
func (t Tree) Groups() []string {
	groups := make([]string, 0, len(t))
	for g := range t {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// Keys returns the sorted key names of one group.
func (t Tree) Keys(group string) []string {
	keys := make([]string, 0, len(t[group]))
	for k := range t[group] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DecodeError reports a file whose metadata could not be decoded. It
// carries the path so batch logs stay attributable per file.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding metadata: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
