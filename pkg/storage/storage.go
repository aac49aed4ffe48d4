// Package storage persists packed records in a pebble database.
//
// Keys are themselves packed records: a big-endian kind tag followed by
// the raw bytes of a KSUID. Big-endian fixed-width encodings compare
// bytewise the way their values compare numerically, and KSUIDs sort by
// creation time, so pebble iterates records grouped by kind in rough
// insertion order without any extra index.
package storage

import (
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/brokkr/pkg/codec"
	"github.com/ssargent/brokkr/pkg/format"
)

// keyFormat lays out record keys: kind(2, big-endian) + ksuid(20, raw).
var keyFormat = format.New(
	format.Elem(codec.FixedUint(16, codec.BigEndian)),
	format.Elem(codec.FixedString(20, codec.PadNone)),
)

// PackedStore stores records packed by a caller-supplied format, keyed by
// (kind, id) tuples that sort by kind then creation time.
type PackedStore struct {
	db *pebble.DB
}

// Open opens or creates a store at path.
func Open(path string) (*PackedStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return &PackedStore{db: db}, nil
}

// Put packs values through f and stores them under a fresh id within
// kind. The generated id is returned for later lookups.
func (s *PackedStore) Put(kind uint16, f *format.Format, values ...any) (ksuid.KSUID, error) {
	id := ksuid.New()

	key, err := encodeKey(kind, id)
	if err != nil {
		return ksuid.Nil, err
	}
	record, err := f.Pack(values...)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("failed to pack record: %w", err)
	}
	if err := s.db.Set(key, record, pebble.NoSync); err != nil {
		return ksuid.Nil, fmt.Errorf("failed to store record: %w", err)
	}
	return id, nil
}

// Get fetches the record stored under (kind, id) and unpacks it through f.
func (s *PackedStore) Get(kind uint16, id ksuid.KSUID, f *format.Format) ([]any, error) {
	key, err := encodeKey(kind, id)
	if err != nil {
		return nil, err
	}

	data, closer, err := s.db.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}
	defer closer.Close()

	values, err := f.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack record: %w", err)
	}
	return values, nil
}

// Delete removes the record stored under (kind, id).
func (s *PackedStore) Delete(kind uint16, id ksuid.KSUID) error {
	key, err := encodeKey(kind, id)
	if err != nil {
		return err
	}
	return s.db.Delete(key, pebble.NoSync)
}

// ScanKind visits every record of one kind in key order, unpacking each
// through f. The walk stops at the first error returned by fn.
func (s *PackedStore) ScanKind(kind uint16, f *format.Format, fn func(id ksuid.KSUID, values []any) error) error {
	lower, err := kindPrefix(kind)
	if err != nil {
		return err
	}
	var upper []byte
	if kind < 1<<16-1 {
		upper, err = kindPrefix(kind + 1)
		if err != nil {
			return err
		}
	}

	iter, err := s.db.NewIter(&pebble.IterOptions{LowerBound: lower, UpperBound: upper})
	if err != nil {
		return fmt.Errorf("failed to open iterator: %w", err)
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		id, err := decodeKey(iter.Key())
		if err != nil {
			return err
		}
		values, err := f.Unpack(iter.Value())
		if err != nil {
			return fmt.Errorf("failed to unpack record %s: %w", id, err)
		}
		if err := fn(id, values); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Close closes the underlying database.
func (s *PackedStore) Close() error {
	return s.db.Close()
}

func encodeKey(kind uint16, id ksuid.KSUID) ([]byte, error) {
	key, err := keyFormat.Pack(uint64(kind), string(id.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("failed to pack key: %w", err)
	}
	return key, nil
}

func decodeKey(key []byte) (ksuid.KSUID, error) {
	values, err := keyFormat.Unpack(key)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("failed to unpack key: %w", err)
	}
	return ksuid.FromBytes([]byte(values[1].(string)))
}

// kindPrefix packs just the kind tag, the shared prefix of every key in
// that kind.
func kindPrefix(kind uint16) ([]byte, error) {
	prefix, err := codec.Pack(codec.FixedUint(16, codec.BigEndian), uint64(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to pack key prefix: %w", err)
	}
	return prefix, nil
}
