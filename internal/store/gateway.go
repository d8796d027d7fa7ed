// Package store provides typed access to the four persisted collections
// backed by a local key-value string store.
package store

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/kizzez/cafeadmin/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Gateway is the raw key-value access to the collection store.
// Writes replace the whole collection; there are no partial updates.
type Gateway interface {
	// ReadRaw returns the serialized collection, or nil when the key is absent
	ReadRaw(c domain.Collection) ([]byte, error)
	// WriteRaw replaces the serialized collection
	WriteRaw(c domain.Collection, data []byte) error
	Close() error
}

// Read decodes a collection into a slice of T. An absent key yields an
// empty slice, never nil.
func Read[T any](g Gateway, c domain.Collection) ([]T, error) {
	data, err := g.ReadRaw(c)
	if err != nil {
		return nil, err
	}
	items := []T{}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrapf(err, "decode collection %s", c)
	}
	return items, nil
}

// Write serializes items and replaces the collection
func Write[T any](g Gateway, c domain.Collection, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "encode collection %s", c)
	}
	return g.WriteRaw(c, data)
}
