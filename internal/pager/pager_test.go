package pager

import "testing"

func TestPrevClampsAtStart(t *testing.T) {
	p := New(5)
	p.Open(0)

	p.Prev()
	if p.Index() != 0 {
		t.Fatalf("prev at start must clamp, got %d", p.Index())
	}
}

func TestNextClampsAtEnd(t *testing.T) {
	p := New(5)
	p.Open(4)

	p.Next()
	if p.Index() != 4 {
		t.Fatalf("next at end must clamp, got %d", p.Index())
	}
}

func TestStepping(t *testing.T) {
	p := New(3)
	p.Open(1)

	p.Next()
	if p.Index() != 2 {
		t.Fatalf("expected index 2, got %d", p.Index())
	}
	p.Prev()
	p.Prev()
	if p.Index() != 0 {
		t.Fatalf("expected index 0, got %d", p.Index())
	}
}

func TestOpenClampsIntoRange(t *testing.T) {
	p := New(3)

	p.Open(10)
	if p.Index() != 2 {
		t.Fatalf("open past end must clamp, got %d", p.Index())
	}
	p.Open(-2)
	if p.Index() != 0 {
		t.Fatalf("open before start must clamp, got %d", p.Index())
	}
}

func TestOpenEmptyIsNoop(t *testing.T) {
	p := New(0)
	p.Open(0)
	if p.IsOpen() {
		t.Fatalf("empty pager must stay closed")
	}
}

func TestKeyboardDispatch(t *testing.T) {
	p := New(3)
	p.Open(1)

	if !p.HandleKey("ArrowRight") || p.Index() != 2 {
		t.Fatalf("ArrowRight must step forward, got %d", p.Index())
	}
	if !p.HandleKey("ArrowLeft") || p.Index() != 1 {
		t.Fatalf("ArrowLeft must step back, got %d", p.Index())
	}
	if p.HandleKey("Enter") {
		t.Fatalf("unrelated keys must not be consumed")
	}
	if !p.HandleKey("Escape") || p.IsOpen() {
		t.Fatalf("Escape must close the pager")
	}
}

func TestClosedPagerIgnoresKeys(t *testing.T) {
	p := New(3)

	for _, key := range []string{"Escape", "ArrowLeft", "ArrowRight"} {
		if p.HandleKey(key) {
			t.Fatalf("closed pager must not consume %q", key)
		}
	}
	if p.IsOpen() {
		t.Fatalf("keys on a closed pager must not open it")
	}
}

func TestSetItemsClosesModal(t *testing.T) {
	p := New(5)
	p.Open(3)

	p.SetItems(2)
	if p.IsOpen() {
		t.Fatalf("replacing items must close the modal")
	}
	if p.Len() != 2 {
		t.Fatalf("expected length 2, got %d", p.Len())
	}
}
