package feature

import (
	"fmt"
	"strings"
)

// Identifier is a namespaced name such as spaghettitrees:dead_oak_log.
type Identifier struct {
	Namespace, Path string
}

// String ...
func (id Identifier) String() string {
	return id.Namespace + ":" + id.Path
}

// Zero reports if the identifier is unset.
func (id Identifier) Zero() bool {
	return id.Namespace == "" && id.Path == ""
}

// MarshalText ...
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// ParseIdentifier parses s into an Identifier. If s has no namespace, the
// namespace passed is used.
func ParseIdentifier(s, namespace string) (Identifier, error) {
	ns, path, ok := strings.Cut(s, ":")
	if !ok {
		ns, path = namespace, s
	}
	id := Identifier{Namespace: ns, Path: path}
	if !validIdentifierPart(ns, false) {
		return Identifier{}, fmt.Errorf("identifier %q: invalid namespace %q", s, ns)
	}
	if !validIdentifierPart(path, true) {
		return Identifier{}, fmt.Errorf("identifier %q: invalid path %q", s, path)
	}
	return id, nil
}

func validIdentifierPart(s string, path bool) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_', c == '-', c == '.':
		case path && c == '/':
		default:
			return false
		}
	}
	return true
}
