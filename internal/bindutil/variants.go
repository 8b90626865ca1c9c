package bindutil

import "strings"

// FilterImplicitVariants reduces a full system-variant tag list down to
// the tags matching configured implicit packages, controlling how
// fine-grained the system variant of a bound package is. Implicit entries
// look like "~platform==linux"; variant tags look like "platform-linux",
// "arch-x86_64", "os-linux-ubuntu-22.04". A tag is kept when the part
// before its first '-' matches the name of some implicit entry. Order of
// variants is preserved.
func FilterImplicitVariants(implicits, variants []string) []string {
	names := make(map[string]struct{}, len(implicits))
	for _, imp := range implicits {
		name, _, _ := strings.Cut(imp, "==")
		names[strings.TrimPrefix(name, "~")] = struct{}{}
	}

	kept := make([]string, 0, len(variants))
	for _, v := range variants {
		family, _, _ := strings.Cut(v, "-")
		if _, ok := names[family]; ok {
			kept = append(kept, v)
		}
	}
	return kept
}
