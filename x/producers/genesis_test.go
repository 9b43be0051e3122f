package producers

import (
	"encoding/json"
	"testing"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/store"
	"github.com/aacio/aacsys/weavetest/assert"
)

func TestGenesis(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
		want    []aacsys.AccountName
	}{
		"no producers": {
			genesis: `{}`,
		},
		"producers with votes": {
			genesis: `{"producers": [
				{"owner": "prod1", "total_votes": 10, "active": true},
				{"owner": "prod2", "total_votes": 30, "active": true, "url": "https://prod2"}
			]}`,
			want: []aacsys.AccountName{"prod2", "prod1"},
		},
		"duplicated producer": {
			genesis: `{"producers": [{"owner": "prod1"}, {"owner": "prod1"}]}`,
			wantErr: errors.ErrDuplicate,
		},
		"invalid producer": {
			genesis: `{"producers": [{"owner": "Prod1"}]}`,
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
			var ini Initializer
			assert.IsErr(t, tc.wantErr, ini.FromGenesis(opts, db))
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.want, consumeOwners(t, NewBucket(), db))
		})
	}
}
