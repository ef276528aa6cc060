package model

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultNamespace is assumed when an identifier string carries no namespace.
const DefaultNamespace = "minecraft"

// ErrInvalidIdentifier indicates a malformed namespaced identifier.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// Identifier is a namespaced key of the form namespace:path.
type Identifier struct {
	Namespace string
	Path      string
}

// Minecraft returns an identifier in the default namespace.
func Minecraft(path string) Identifier {
	return Identifier{Namespace: DefaultNamespace, Path: path}
}

// ParseIdentifier parses "namespace:path" or a bare "path".
func ParseIdentifier(s string) (Identifier, error) {
	ns, path, found := strings.Cut(s, ":")
	if !found {
		ns, path = DefaultNamespace, s
	}
	if ns == "" || path == "" || strings.Contains(path, ":") {
		return Identifier{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}
	return Identifier{Namespace: ns, Path: path}, nil
}

// String returns the canonical namespace:path form.
func (id Identifier) String() string {
	return id.Namespace + ":" + id.Path
}

// IsZero reports whether the identifier is unset.
func (id Identifier) IsZero() bool {
	return id.Namespace == "" && id.Path == ""
}
