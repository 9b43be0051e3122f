package aacsys

import (
	"testing"

	"github.com/aacio/aacsys/errors"
)

func TestAccountNameValidate(t *testing.T) {
	cases := map[string]struct {
		name    AccountName
		wantErr *errors.Error
	}{
		"simple name":        {name: "alice"},
		"name with a dot":    {name: "aacio.token"},
		"digits 1 to 5":      {name: "producer1234"},
		"empty":              {name: "", wantErr: errors.ErrInput},
		"too long":           {name: "abcdefghijklm", wantErr: errors.ErrInput},
		"upper case":         {name: "Alice", wantErr: errors.ErrInput},
		"digit out of range": {name: "bob9", wantErr: errors.ErrInput},
		"special characters": {name: "bob-1", wantErr: errors.ErrInput},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.name.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestBlockHeaderValidate(t *testing.T) {
	cases := map[string]struct {
		header  BlockHeader
		wantErr *errors.Error
	}{
		"valid header": {
			header: BlockHeader{Timestamp: 10, Producer: "prod1"},
		},
		"valid header with a schedule": {
			header: BlockHeader{
				Timestamp: 10,
				Producer:  "prod1",
				NewProducers: &ProducerSchedule{
					Version:   2,
					Producers: []ProducerKey{{ProducerName: "prod1"}, {ProducerName: "prod2"}},
				},
			},
		},
		"negative timestamp": {
			header:  BlockHeader{Timestamp: -1, Producer: "prod1"},
			wantErr: errors.ErrState,
		},
		"missing producer": {
			header:  BlockHeader{Timestamp: 10},
			wantErr: errors.ErrInput,
		},
		"repeated producer in the schedule": {
			header: BlockHeader{
				Timestamp: 10,
				Producer:  "prod1",
				NewProducers: &ProducerSchedule{
					Producers: []ProducerKey{{ProducerName: "prod1"}, {ProducerName: "prod1"}},
				},
			},
			wantErr: errors.ErrDuplicate,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.header.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
