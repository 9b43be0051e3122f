package gconf

import (
	"encoding/json"
	"testing"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/store"
	"github.com/aacio/aacsys/weavetest/assert"
)

// limits is a configuration used for testing. It serializes as JSON so
// that no codec is needed.
type limits struct {
	Max int64 `json:"max"`
}

func (l *limits) Marshal() ([]byte, error)   { return json.Marshal(l) }
func (l *limits) Unmarshal(raw []byte) error { return json.Unmarshal(raw, l) }
func (l *limits) Validate() error {
	if l.Max <= 0 {
		return errors.Wrap(errors.ErrState, "max must be positive")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	var got limits
	err := Load(db, "limits", &got)
	assert.IsErr(t, errors.ErrNotFound, err)

	err = Save(db, "limits", &limits{Max: 0})
	assert.IsErr(t, errors.ErrState, err)

	assert.Nil(t, Save(db, "limits", &limits{Max: 5}))
	assert.Nil(t, Load(db, "limits", &got))
	assert.Equal(t, limits{Max: 5}, got)

	raw, err := db.Get([]byte("_c:limits"))
	assert.Nil(t, err)
	assert.Equal(t, `{"max":5}`, string(raw))
}

func TestInitConfig(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
		want    limits
	}{
		"configuration present": {
			genesis: `{"conf": {"limits": {"max": 12}}}`,
			want:    limits{Max: 12},
		},
		"no conf section": {
			genesis: `{}`,
			wantErr: errors.ErrNotFound,
		},
		"other package configured only": {
			genesis: `{"conf": {"other": {"max": 1}}}`,
			wantErr: errors.ErrNotFound,
		},
		"invalid configuration": {
			genesis: `{"conf": {"limits": {"max": -1}}}`,
			wantErr: errors.ErrState,
		},
		"malformed configuration": {
			genesis: `{"conf": {"limits": {"max": "many"}}}`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts aacsys.Options
			if err := json.Unmarshal([]byte(tc.genesis), &opts); err != nil {
				t.Fatalf("cannot unmarshal genesis: %s", err)
			}
			db := store.MemStore()
			var conf limits
			err := InitConfig(db, opts, "limits", &conf)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}
			var got limits
			assert.Nil(t, Load(db, "limits", &got))
			assert.Equal(t, tc.want, got)
		})
	}
}
