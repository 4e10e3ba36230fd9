// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// path.go implements structured prop paths. The editor surface addresses
// nested prop locations with dotted keys like "items.0.title"; those are
// parsed once at the API boundary into a PropPath of typed segments, and
// the engine only ever works with the structured form.
package builder

import (
	"strconv"
	"strings"

	"landpress/internal/models"
)

// PathSegment is one step into a nested props value: either a map key or
// a slice index.
type PathSegment struct {
	Key     string
	Index   int
	IsIndex bool
}

// PropPath addresses a leaf inside a component's props.
type PropPath []PathSegment

// ParsePropPath converts a dotted key into a structured path. Purely
// numeric segments become slice indexes, everything else map keys.
func ParsePropPath(dotted string) PropPath {
	parts := strings.Split(dotted, ".")
	path := make(PropPath, 0, len(parts))
	for _, part := range parts {
		if idx, err := strconv.Atoi(part); err == nil && idx >= 0 {
			path = append(path, PathSegment{Index: idx, IsIndex: true})
		} else {
			path = append(path, PathSegment{Key: part})
		}
	}
	return path
}

// String renders the path back in dotted form.
func (p PropPath) String() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		if seg.IsIndex {
			parts[i] = strconv.Itoa(seg.Index)
		} else {
			parts[i] = seg.Key
		}
	}
	return strings.Join(parts, ".")
}

// setPropValue writes value at path inside props, creating intermediate
// maps and slices as needed and leaving every sibling value untouched.
// The returned map is the (possibly newly allocated) root.
func setPropValue(props map[string]any, path PropPath, value any) map[string]any {
	if len(path) == 0 {
		return props
	}
	if props == nil {
		props = map[string]any{}
	}
	root := setStep(props, path, value)
	if m, ok := root.(map[string]any); ok {
		return m
	}
	// First segment was an index; props stay a map keyed by the segment's
	// dotted form. Callers never hit this with well-formed editor paths.
	return props
}

// setStep recursively descends one segment, returning the container with
// the leaf replaced.
func setStep(container any, path PropPath, value any) any {
	if len(path) == 0 {
		return value
	}
	seg := path[0]
	if seg.IsIndex {
		list, ok := container.([]any)
		if !ok {
			list = []any{}
		}
		for len(list) <= seg.Index {
			list = append(list, nil)
		}
		list[seg.Index] = setStep(list[seg.Index], path[1:], value)
		return list
	}

	m, ok := container.(map[string]any)
	if !ok {
		m = map[string]any{}
	}
	m[seg.Key] = setStep(m[seg.Key], path[1:], value)
	return m
}

// getPropValue reads the value at path, reporting whether it exists.
func getPropValue(props map[string]any, path PropPath) (any, bool) {
	var current any = props
	for _, seg := range path {
		if seg.IsIndex {
			list, ok := current.([]any)
			if !ok || seg.Index >= len(list) {
				return nil, false
			}
			current = list[seg.Index]
			continue
		}
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[seg.Key]
		if !ok {
			return nil, false
		}
	}
	return models.CopyValue(current), true
}
