package gamemath

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 10, 10),
			want: true,
		},
		{
			name: "contained",
			a:    NewRect(0, 0, 20, 20),
			b:    NewRect(5, 5, 2, 2),
			want: true,
		},
		{
			name: "separated",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(20, 0, 10, 10),
			want: false,
		},
		{
			name: "edge touch horizontal is not intersecting",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 0, 10, 10),
			want: false,
		},
		{
			name: "edge touch vertical is not intersecting",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(0, 10, 10, 10),
			want: false,
		},
		{
			name: "corner touch is not intersecting",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 10, 10, 10),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("reverse Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectOverlap(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Rect
		wantDX float64
		wantDY float64
	}{
		{
			name:   "shallow horizontal deep vertical",
			a:      NewRect(0, 0, 10, 10),
			b:      NewRect(8, 2, 10, 10),
			wantDX: 2,
			wantDY: 8,
		},
		{
			name:   "deep horizontal shallow vertical",
			a:      NewRect(0, 0, 10, 10),
			b:      NewRect(2, 9, 10, 10),
			wantDX: 8,
			wantDY: 1,
		},
		{
			name:   "identical rects",
			a:      NewRect(0, 0, 10, 10),
			b:      NewRect(0, 0, 10, 10),
			wantDX: 10,
			wantDY: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := tt.a.Overlap(tt.b)
			if dx != tt.wantDX || dy != tt.wantDY {
				t.Errorf("Overlap() = (%v, %v), want (%v, %v)", dx, dy, tt.wantDX, tt.wantDY)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.Left() != 10 || r.Right() != 40 || r.Top() != 20 || r.Bottom() != 60 {
		t.Errorf("edges = (%v, %v, %v, %v), want (10, 40, 20, 60)", r.Left(), r.Right(), r.Top(), r.Bottom())
	}
	if r.CenterX() != 25 || r.CenterY() != 40 {
		t.Errorf("center = (%v, %v), want (25, 40)", r.CenterX(), r.CenterY())
	}
}

func TestVecHelpers(t *testing.T) {
	if got := ApplyFriction(100, 0.8); got != 80 {
		t.Errorf("ApplyFriction(100, 0.8) = %v, want 80", got)
	}
	if got := ClampSpeed(500, 300); got != 300 {
		t.Errorf("ClampSpeed(500, 300) = %v, want 300", got)
	}
	if got := ClampSpeed(-500, 300); got != -300 {
		t.Errorf("ClampSpeed(-500, 300) = %v, want -300", got)
	}
	if got := Clamp(5, 0, 9); got != 5 {
		t.Errorf("Clamp(5, 0, 9) = %v, want 5", got)
	}
	if got := Lerp(0, 10, 0.1); got != 1 {
		t.Errorf("Lerp(0, 10, 0.1) = %v, want 1", got)
	}
}
