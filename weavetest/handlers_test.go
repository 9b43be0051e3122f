package weavetest

import (
	"testing"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
)

func TestHandlerWithError(t *testing.T) {
	h := Handler{
		DeliverErr: errors.ErrNotFound,
	}

	_, err := h.Deliver(nil, nil, nil)
	if want := errors.ErrNotFound; !want.Is(err) {
		t.Errorf("want %q, got %q", want, err)
	}
}

func TestHandlerCallCount(t *testing.T) {
	var h Handler

	assertHCounts(t, &h, 0)

	h.Deliver(nil, nil, nil)
	assertHCounts(t, &h, 1)

	h.Deliver(nil, nil, nil)
	assertHCounts(t, &h, 2)

	// Failing counter must increment as well.
	h.DeliverErr = errors.ErrNotFound

	h.Deliver(nil, nil, nil)
	assertHCounts(t, &h, 3)
}

func TestHandlerResult(t *testing.T) {
	h := Handler{}
	h.DeliverResult.Log = "done"

	var seen []byte
	h.OnDeliver = func(_ aacsys.Context, _ aacsys.KVStore, act aacsys.Action) {
		seen, _ = act.Marshal()
	}

	res, err := h.Deliver(nil, nil, &Action{Payload: []byte("payload")})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if res.Log != "done" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if string(seen) != "payload" {
		t.Fatalf("unexpected action payload: %q", seen)
	}
}

func assertHCounts(t *testing.T, h *Handler, wantDeliver int) {
	t.Helper()
	if got := h.CallCount(); got != wantDeliver {
		t.Errorf("want %d delivers, got %d", wantDeliver, got)
	}
}
