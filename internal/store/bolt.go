package store

import (
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/kizzez/cafeadmin/internal/domain"
)

var collectionsBucket = []byte("collections")

// BoltGateway persists collections in a single-file bbolt store,
// one key per collection, values are JSON arrays.
type BoltGateway struct {
	db *bolt.DB
}

// Open opens (or creates) the store file and ensures the bucket exists
func Open(path string) (*BoltGateway, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open store %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(collectionsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init store bucket")
	}
	return &BoltGateway{db: db}, nil
}

func (g *BoltGateway) ReadRaw(c domain.Collection) ([]byte, error) {
	var data []byte
	err := g.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(collectionsBucket).Get([]byte(c))
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "read collection %s", c)
	}
	return data, nil
}

func (g *BoltGateway) WriteRaw(c domain.Collection, data []byte) error {
	err := g.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(collectionsBucket).Put([]byte(c), data)
	})
	return errors.Wrapf(err, "write collection %s", c)
}

func (g *BoltGateway) Close() error {
	return g.db.Close()
}
