package ui

import "testing"

func TestBoxContainsIsHalfOpen(t *testing.T) {
	b := Box{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 9, true},
		{10, 5, false},
		{5, 10, false},
		{-1, 5, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("%v.Contains(%d, %d) = %v, want %v", b, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBoxIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want Box
	}{
		{
			name: "overlap",
			a:    Box{0, 0, 10, 10},
			b:    Box{5, 5, 10, 10},
			want: Box{5, 5, 5, 5},
		},
		{
			name: "contained",
			a:    Box{0, 0, 100, 100},
			b:    Box{10, 20, 30, 40},
			want: Box{10, 20, 30, 40},
		},
		{
			name: "disjoint",
			a:    Box{0, 0, 10, 10},
			b:    Box{20, 20, 5, 5},
			want: Box{},
		},
		{
			name: "touching edges",
			a:    Box{0, 0, 10, 10},
			b:    Box{10, 0, 10, 10},
			want: Box{},
		},
		{
			name: "root",
			a:    rootBox,
			b:    Box{-5, 3, 10, 10},
			want: Box{-5, 3, 10, 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab, ba := tt.a.Intersect(tt.b), tt.b.Intersect(tt.a)
			if ab != tt.want {
				t.Errorf("Intersect = %v, want %v", ab, tt.want)
			}
			if ab != ba {
				t.Errorf("Intersect not commutative: %v vs %v", ab, ba)
			}
			if got, want := tt.a.Overlaps(tt.b), !tt.want.Empty(); got != want {
				t.Errorf("Overlaps = %v, want %v", got, want)
			}
		})
	}
}

func TestBoxInset(t *testing.T) {
	got := Box{10, 40, 300, 130}.Inset(10)
	if want := (Box{20, 50, 280, 110}); got != want {
		t.Errorf("Inset = %v, want %v", got, want)
	}
	if !(Box{0, 0, 4, 4}).Inset(2).Empty() {
		t.Error("over-inset box should be empty")
	}
}
