package valueobjects

import (
	"errors"
	"path"
	"strings"

	"docgraph/domain/config"
	pkgerrors "docgraph/pkg/errors"
)

// DocumentKey is a value object identifying one document in the graph.
// Keys are namespace-qualified, extension-free, and index-folded: the key of
// "guide/index.md" is the key of the "guide" directory itself, because an
// index page is the node that represents its folder.
type DocumentKey struct {
	value string
}

// NewDocumentKey derives a key from a namespace and a source path using the
// default domain configuration.
func NewDocumentKey(namespace, sourcePath string) (DocumentKey, error) {
	return NewDocumentKeyWithConfig(namespace, sourcePath, config.DefaultDomainConfig())
}

// NewDocumentKeyWithConfig derives a key from a namespace and a source path.
// The derivation is pure and deterministic: same inputs, same key.
func NewDocumentKeyWithConfig(namespace, sourcePath string, cfg *config.DomainConfig) (DocumentKey, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		return DocumentKey{}, pkgerrors.NewValidationError("namespace cannot be empty")
	}

	sourcePath = strings.Trim(strings.TrimSpace(sourcePath), "/")
	if sourcePath == "" {
		return DocumentKey{}, pkgerrors.NewInvalidPathError(sourcePath)
	}

	stem := strings.TrimSuffix(sourcePath, path.Ext(sourcePath))
	stem = strings.Trim(stem, "/")
	if stem == "" {
		return DocumentKey{}, pkgerrors.NewInvalidPathError(sourcePath)
	}

	segments := strings.Split(stem, "/")
	last := len(segments) - 1
	if segments[last] == cfg.IndexMarker {
		if last > 0 {
			// dir/index folds to dir
			segments = segments[:last]
		} else if cfg.FoldRootIndex {
			// top-level index folds to the namespace root
			segments = nil
		}
	}

	if len(segments) == 0 {
		return DocumentKey{value: namespace}, nil
	}
	return DocumentKey{value: namespace + "/" + strings.Join(segments, "/")}, nil
}

// NewDocumentKeyFromString wraps an already-derived key. Used when a key
// round-trips through the wire contract.
func NewDocumentKeyFromString(key string) (DocumentKey, error) {
	if key == "" {
		return DocumentKey{}, errors.New("document key cannot be empty")
	}
	return DocumentKey{value: key}, nil
}

// String returns the string representation of the key
func (k DocumentKey) String() string {
	return k.value
}

// Slug returns the final path segment of the key. For a namespace-root key
// the slug is the namespace itself.
func (k DocumentKey) Slug() string {
	if i := strings.LastIndex(k.value, "/"); i >= 0 {
		return k.value[i+1:]
	}
	return k.value
}

// Equals checks if two keys are equal
func (k DocumentKey) Equals(other DocumentKey) bool {
	return k.value == other.value
}

// IsZero checks if the key is the zero value
func (k DocumentKey) IsZero() bool {
	return k.value == ""
}

// MarshalJSON implements json.Marshaler
func (k DocumentKey) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (k *DocumentKey) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("DocumentKey must be a string")
	}
	k.value = string(data[1 : len(data)-1])
	return nil
}
