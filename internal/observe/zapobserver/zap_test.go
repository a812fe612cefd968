package zapobserver_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/djdv/go-pagecache"
	"github.com/djdv/go-pagecache/internal/observe/zapobserver"
)

func TestObserver(t *testing.T) {
	var (
		core, logs = observer.New(zapcore.DebugLevel)
		obs        = zapobserver.New[string](zap.New(core))
	)
	obs.Observe(pagecache.Event[string]{Op: pagecache.OpEvict, Key: "page", Resident: 3})
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Message != "evict" {
		t.Fatalf("expected message evict, got %q", entry.Message)
	}
	fields := entry.ContextMap()
	if fields["key"] != "page" || fields["resident"] != int64(3) {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestObserverLevel(t *testing.T) {
	var (
		core, logs = observer.New(zapcore.InfoLevel)
		obs        = zapobserver.New[int](zap.New(core))
	)
	obs.Observe(pagecache.Event[int]{Op: pagecache.OpHit, Key: 1})
	if logs.Len() != 0 {
		t.Fatal("debug events should be filtered above debug level")
	}
	// A nil logger must be safe to use.
	zapobserver.New[int](nil).Observe(pagecache.Event[int]{Op: pagecache.OpMiss})
}
