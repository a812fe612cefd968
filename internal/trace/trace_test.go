package trace_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/djdv/go-pagecache/internal/trace"
)

const shortTrace = "4 12\n1 2 3 4 1 2 5 1 2 4 3 4\n"

var shortKeys = []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 4, 3, 4}

func TestRead(t *testing.T) {
	t.Run("valid", readValid)
	t.Run("malformed", readMalformed)
}

func readValid(t *testing.T) {
	t.Parallel()
	got, err := trace.Read(strings.NewReader(shortTrace + " 99 trailing"))
	if err != nil {
		t.Fatal(err)
	}
	checkTrace(t, got, 4, shortKeys)
}

func readMalformed(t *testing.T) {
	for _, test := range []struct {
		name, input, field string
	}{
		{"empty", "", "size"},
		{"bad size", "x 1 1", "size"},
		{"bad amount", "4 many", "keys amount"},
		{"short keys", "4 3 1 2", "key"},
		{"bad key", "4 2 1 two", "key"},
		{"huge amount", "4 99999999999999 1 2", "key"},
		{"negative", "-1 0", "negative"},
	} {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := trace.Read(strings.NewReader(test.input))
			if !errors.Is(err, trace.ErrMalformedTrace) {
				t.Fatalf("expected ErrMalformedTrace, got %v", err)
			}
			if !strings.Contains(err.Error(), test.field) {
				t.Fatalf("error %q does not name %q", err, test.field)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Run("plain", func(t *testing.T) {
		path := filepath.Join(dir, "trace.txt")
		if err := os.WriteFile(path, []byte(shortTrace), 0o600); err != nil {
			t.Fatal(err)
		}
		got, err := trace.Load(path)
		if err != nil {
			t.Fatal(err)
		}
		checkTrace(t, got, 4, shortKeys)
	})
	t.Run("zstd", func(t *testing.T) {
		path := filepath.Join(dir, "trace.txt.zst")
		encoder, err := zstd.NewWriter(nil)
		if err != nil {
			t.Fatal(err)
		}
		compressed := encoder.EncodeAll([]byte(shortTrace), nil)
		if err := encoder.Close(); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, compressed, 0o600); err != nil {
			t.Fatal(err)
		}
		got, err := trace.Load(path)
		if err != nil {
			t.Fatal(err)
		}
		checkTrace(t, got, 4, shortKeys)
	})
	t.Run("missing", func(t *testing.T) {
		if _, err := trace.Load(filepath.Join(dir, "absent")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}

func checkTrace(t *testing.T, got *trace.Trace, capacity int, keys []int) {
	t.Helper()
	if got.Capacity != capacity {
		t.Fatalf("expected capacity %d, got %d", capacity, got.Capacity)
	}
	if !slices.Equal(got.Keys, keys) {
		t.Fatalf("unexpected keys"+
			"\n\tgot: %v"+
			"\n\twant: %v",
			got.Keys, keys)
	}
}
