package codec

import (
	"testing"

	"github.com/aacio/aacsys/errors"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string
	Votes   uint64
	When    int64
	Active  bool
	Pointer *inner
}

type inner struct {
	Version uint32
}

func TestFieldOrderDefinesLayout(t *testing.T) {
	a, err := Marshal(sample{Name: "a", Votes: 1})
	require.NoError(t, err)
	b, err := Marshal(struct {
		Name  string
		Votes uint64
	}{Name: "a", Votes: 1})
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestOptionalPointer(t *testing.T) {
	bz, err := Marshal(sample{Name: "a"})
	require.NoError(t, err)
	var got sample
	require.NoError(t, Unmarshal(bz, &got))
	require.Nil(t, got.Pointer)

	bz, err = Marshal(sample{Name: "a", Pointer: &inner{Version: 7}})
	require.NoError(t, err)
	got = sample{}
	require.NoError(t, Unmarshal(bz, &got))
	require.NotNil(t, got.Pointer)
	require.Equal(t, uint32(7), got.Pointer.Version)
}

func TestUnmarshalGarbage(t *testing.T) {
	var got sample
	err := Unmarshal([]byte{0xff, 0xff, 0xff}, &got)
	require.True(t, errors.ErrInput.Is(err), "got %+v", err)
}
