package ring_test

import (
	"slices"
	"testing"

	"github.com/djdv/go-pagecache/internal/ring"
)

type element = ring.Ring[string, int]

func TestRing(t *testing.T) {
	t.Run("empty sentinel", emptySentinel)
	t.Run("push front order", pushFrontOrder)
	t.Run("remove middle", removeMiddle)
	t.Run("handles survive sentinel", handlesSurviveSentinel)
}

func newElement(name string) *element {
	return &element{Metadata: ring.Metadata[string]{Name: name}}
}

func names(sentinel *element) []string {
	var got []string
	for e := range sentinel.Elements() {
		got = append(got, e.Name)
	}
	return got
}

func emptySentinel(t *testing.T) {
	t.Parallel()
	var sentinel element
	if !sentinel.Empty() {
		t.Fatal("zero value sentinel should be empty")
	}
	if sentinel.Front() != nil || sentinel.Back() != nil {
		t.Fatal("empty sentinel should have no front or back")
	}
	if got := sentinel.Len(); got != 1 {
		t.Fatalf("expected sentinel-only length 1, got %d", got)
	}
}

func pushFrontOrder(t *testing.T) {
	t.Parallel()
	var sentinel element
	for _, name := range []string{"a", "b", "c"} {
		sentinel.PushFront(newElement(name))
	}
	want := []string{"c", "b", "a"}
	if got := names(&sentinel); !slices.Equal(got, want) {
		t.Fatalf("unexpected order"+
			"\n\tgot: %v"+
			"\n\twant: %v",
			got, want)
	}
	if front, back := sentinel.Front().Name, sentinel.Back().Name; front != "c" || back != "a" {
		t.Fatalf("expected front c and back a, got %s and %s", front, back)
	}
}

func removeMiddle(t *testing.T) {
	t.Parallel()
	var (
		sentinel element
		middle   = newElement("b")
	)
	sentinel.PushFront(newElement("a"))
	sentinel.PushFront(middle)
	sentinel.PushFront(newElement("c"))
	removed := ring.Remove(middle)
	if removed != middle || removed.Len() != 1 {
		t.Fatal("removed element should be returned as a one-element ring")
	}
	want := []string{"c", "a"}
	if got := names(&sentinel); !slices.Equal(got, want) {
		t.Fatalf("unexpected order after removal"+
			"\n\tgot: %v"+
			"\n\twant: %v",
			got, want)
	}
}

func handlesSurviveSentinel(t *testing.T) {
	t.Parallel()
	var (
		first, second element
		e             = newElement("moved")
	)
	first.PushFront(e)
	ring.Remove(e)
	if !first.Empty() {
		t.Fatal("first ring should be empty after removal")
	}
	second.PushFront(e)
	if got := second.Front(); got != e {
		t.Fatal("element should be reusable in a new ring")
	}
}
