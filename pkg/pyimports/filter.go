package pyimports

import "strings"

// TopLevel returns the leading segment of a dotted module name:
// "a.b.c" becomes "a", a name without a dot is returned unchanged.
// Idempotent.
func TopLevel(name string) string {
	head, _, _ := strings.Cut(name, ".")

	return head
}

// TruncateTopLevel maps TopLevel over names in place, preserving order.
func TruncateTopLevel(names []string) []string {
	for i, name := range names {
		names[i] = TopLevel(name)
	}

	return names
}

// DropStdlib removes names that exactly equal a known standard-library
// module, preserving the order of the survivors. The match is verbatim,
// never prefix or dotted-component, so dotted submodule references like
// "os.path" survive unless truncated first.
func DropStdlib(names []string) []string {
	kept := names[:0]

	for _, name := range names {
		if IsStdlib(name) {
			continue
		}

		kept = append(kept, name)
	}

	return kept
}
