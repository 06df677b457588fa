package container

import "testing"

func TestListPushBackPopFrontActsAsQueue(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)

	for _, want := range []int{1, 2, 3} {
		got, ok := l.PopFront()
		if !ok || got != want {
			t.Fatalf("got (%d, %v), want (%d, true)", got, ok, want)
		}
	}
	if !l.Empty() {
		t.Error("expected the list to be empty after draining it")
	}
}

func TestListPushFrontPopFrontActsAsStack(t *testing.T) {
	l := NewList[int]()
	l.PushFront(1)
	l.PushFront(2)
	l.PushFront(3)

	for _, want := range []int{3, 2, 1} {
		got, ok := l.PopFront()
		if !ok || got != want {
			t.Fatalf("got (%d, %v), want (%d, true)", got, ok, want)
		}
	}
}

func TestListPeekFrontDoesNotRemove(t *testing.T) {
	l := NewList[int]()
	l.PushBack(42)

	got, ok := l.PeekFront()
	if !ok || got != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", got, ok)
	}
	if l.Size() != 1 {
		t.Errorf("PeekFront should not remove the element, size = %d", l.Size())
	}
}

func TestListPopFrontOnEmptyReportsNotOK(t *testing.T) {
	l := NewList[int]()
	if _, ok := l.PopFront(); ok {
		t.Error("expected PopFront on an empty list to report ok=false")
	}
}

func TestListSizeAndEmpty(t *testing.T) {
	l := NewList[string]()
	if !l.Empty() || l.Size() != 0 {
		t.Fatalf("new list should be empty with size 0, got Empty=%v Size=%d", l.Empty(), l.Size())
	}
	l.PushBack("a")
	l.PushBack("b")
	if l.Empty() || l.Size() != 2 {
		t.Fatalf("expected size 2 after two pushes, got Empty=%v Size=%d", l.Empty(), l.Size())
	}
}

func TestListToSlicePreservesOrder(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushFront(0)

	got := l.ToSlice()
	want := []int{0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestListInsertBeforeAndRemove(t *testing.T) {
	eq := func(a, b int) bool { return a == b }

	l := NewList[int]()
	l.PushBack(1)
	l.PushBack(3)

	if !l.InsertBefore(2, 3, eq) {
		t.Fatal("expected InsertBefore to find the mark element")
	}
	if got := l.ToSlice(); len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("got %v, want [1 2 3]", got)
	}

	if l.InsertBefore(99, 100, eq) {
		t.Error("expected InsertBefore to report false for a missing mark")
	}

	if !l.Remove(2, eq) {
		t.Fatal("expected Remove to find and remove the element")
	}
	if got := l.ToSlice(); len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("got %v, want [1 3]", got)
	}
	if l.Remove(404, eq) {
		t.Error("expected Remove to report false for a missing element")
	}
}
