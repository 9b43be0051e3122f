package orm

import (
	"encoding/binary"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/codec"
	"github.com/aacio/aacsys/errors"
)

// score is a minimal model used to exercise buckets and indexes.
type score struct {
	Points uint64
}

var _ CloneableData = (*score)(nil)

func (s *score) Marshal() ([]byte, error)   { return codec.Marshal(s) }
func (s *score) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, s) }
func (s *score) Copy() CloneableData        { return &score{Points: s.Points} }
func (s *score) Validate() error {
	if s.Points > 1000 {
		return errors.Wrap(errors.ErrModel, "too many points")
	}
	return nil
}

func newScore(key string, points uint64) Object {
	return NewSimpleObj([]byte(key), &score{Points: points})
}

func pointsIndexer(obj Object) ([]byte, error) {
	s, ok := obj.Value().(*score)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
	}
	res := make([]byte, 8)
	binary.BigEndian.PutUint64(res, s.Points)
	return res, nil
}

func consumeKeys(it *ObjectIterator) ([]string, error) {
	defer it.Release()
	var keys []string
	for {
		obj, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return keys, nil
		}
		if err != nil {
			return nil, err
		}
		keys = append(keys, string(obj.Key()))
	}
}

var _ aacsys.Persistent = (*score)(nil)
