package kioku

import "testing"

// mustPanicWith runs fn and fails unless it panics with exactly want.
func mustPanicWith(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v, got no panic", want)
		}
		if r != want {
			t.Fatalf("panic value = %v, want %v", r, want)
		}
	}()
	fn()
}

func TestPaddingFor(t *testing.T) {
	tests := []struct {
		addr, align, expected uintptr
	}{
		{0, 1, 0},
		{5, 1, 0},
		{0, 8, 0},
		{4, 8, 4},
		{8, 8, 0},
		{9, 8, 7},
		{13, 4, 3},
		{16, 16, 0},
		{17, 16, 15},
	}

	for _, tt := range tests {
		if got := paddingFor(tt.addr, tt.align); got != tt.expected {
			t.Errorf("paddingFor(%d, %d) = %d, want %d", tt.addr, tt.align, got, tt.expected)
		}
	}
}

func TestPaddingForInvalidAlignment(t *testing.T) {
	for _, align := range []uintptr{0, 3, 6, 12, 100} {
		mustPanicWith(t, ErrInvalidAlignment, func() {
			paddingFor(64, align)
		})
	}
}

func TestWithMinAlign(t *testing.T) {
	l := layout{size: 8, align: 4}

	if got := l.withMinAlign(16); got.align != 16 || got.size != 8 {
		t.Errorf("withMinAlign(16) = %+v, want {8 16}", got)
	}
	// A weaker request never loosens the natural alignment.
	if got := l.withMinAlign(2); got.align != 4 {
		t.Errorf("withMinAlign(2) align = %d, want 4", got.align)
	}

	mustPanicWith(t, ErrInvalidAlignment, func() { l.withMinAlign(0) })
	mustPanicWith(t, ErrInvalidAlignment, func() { l.withMinAlign(6) })
}

func TestArrayLayout(t *testing.T) {
	tests := []struct {
		name     string
		elem     layout
		n        int
		expected layout
	}{
		{"padded element", layout{size: 6, align: 4}, 3, layout{size: 24, align: 4}},
		{"already aligned", layout{size: 8, align: 8}, 4, layout{size: 32, align: 8}},
		{"zero length", layout{size: 8, align: 8}, 0, layout{size: 0, align: 8}},
		{"byte element", layout{size: 1, align: 1}, 100, layout{size: 100, align: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := arrayLayout(tt.elem, tt.n); got != tt.expected {
				t.Errorf("arrayLayout(%+v, %d) = %+v, want %+v", tt.elem, tt.n, got, tt.expected)
			}
		})
	}
}

func TestArrayLayoutOverflow(t *testing.T) {
	mustPanicWith(t, ErrOverflow, func() {
		arrayLayout(layout{size: 8, align: 8}, -1)
	})
	mustPanicWith(t, ErrOverflow, func() {
		arrayLayout(layout{size: ^uintptr(0) / 2, align: 1}, 3)
	})
}
