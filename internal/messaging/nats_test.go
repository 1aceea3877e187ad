package messaging

import "testing"

func TestServer_DrainBeforeStart(t *testing.T) {
	s := NewServer(nil, &stubPostService{})

	// The shutdown path drains unconditionally; with no subscriptions it
	// must be a no-op, and calling it twice must be harmless.
	s.Drain()
	s.Drain()
}
