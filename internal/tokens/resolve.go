package tokens

import "strings"

// ResolveByPath walks root one segment at a time. Segments match keys
// literally. A miss at any step yields false; it never panics.
func ResolveByPath(root Node, segments []string) (Node, bool) {
	if root == nil {
		return nil, false
	}
	current := root
	for _, segment := range segments {
		switch node := current.(type) {
		case *Group:
			child, ok := node.Get(segment)
			if !ok {
				return nil, false
			}
			current = child
		case Token:
			field, ok := node.Field(segment)
			if !ok {
				return nil, false
			}
			current = field
		default:
			return nil, false
		}
	}
	return current, true
}

// ResolveByDottedPath splits path on "." and delegates to ResolveByPath.
// This is the entry point for lookups that span the brand, alias and mapped roots.
func ResolveByDottedPath(root Node, path string) (Node, bool) {
	return ResolveByPath(root, strings.Split(path, "."))
}
