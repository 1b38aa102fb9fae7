package domain

import "strings"

// JoinBase joins p onto base with slash-separated path semantics.
// An absolute p replaces base entirely. Repeated separators and "."
// segments are dropped, but ".." segments are kept as written: they are
// never resolved against base.
func JoinBase(base, p string) string {
	if base == "" || strings.HasPrefix(p, "/") {
		return normalize(p)
	}
	return normalize(base + "/" + p)
}

// JoinAll applies JoinBase to each element, preserving order.
func JoinAll(base string, paths []string) []string {
	if paths == nil {
		return nil
	}
	res := make([]string, len(paths))
	for i, p := range paths {
		res[i] = JoinBase(base, p)
	}
	return res
}

// normalize removes empty and "." segments without touching "..".
func normalize(p string) string {
	segments := strings.Split(p, "/")
	kept := segments[:0]
	for _, s := range segments {
		if s == "" || s == "." {
			continue
		}
		kept = append(kept, s)
	}

	joined := strings.Join(kept, "/")
	switch {
	case strings.HasPrefix(p, "/"):
		return "/" + joined
	case joined == "":
		return "."
	default:
		return joined
	}
}
