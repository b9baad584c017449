package geom

import (
	"math"
	"testing"
)

const eps = 1e-12

func TestVecArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{"Add", Vec2{1, 2}.Add(Vec2{3, -4}), Vec2{4, -2}},
		{"Sub", Vec2{1, 2}.Sub(Vec2{3, -4}), Vec2{-2, 6}},
		{"Scale", Vec2{1.5, -2}.Scale(2), Vec2{3, -4}},
		{"ScaleZero", Vec2{1.5, -2}.Scale(0), Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got.X-tt.want.X) > eps || math.Abs(tt.got.Y-tt.want.Y) > eps {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestLen(t *testing.T) {
	if got := (Vec2{3, 4}).Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := (Vec2{}).Len(); got != 0 {
		t.Errorf("Len of zero vector = %v, want 0", got)
	}
	if got := (Vec2{3, 4}).LenSq(); got != 25 {
		t.Errorf("LenSq = %v, want 25", got)
	}
}

func TestNormalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	if math.Abs(n.Len()-1) > eps {
		t.Errorf("normalized length = %v, want 1", n.Len())
	}
	if math.Abs(n.X-0.6) > eps || math.Abs(n.Y-0.8) > eps {
		t.Errorf("normalized = %+v, want {0.6 0.8}", n)
	}

	// The zero vector must not produce NaN.
	z := Vec2{}.Normalize()
	if z != (Vec2{}) {
		t.Errorf("zero vector normalized to %+v, want zero", z)
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want bool
	}{
		{"Finite", Vec2{1, -2}, true},
		{"Zero", Vec2{}, true},
		{"NaNX", Vec2{math.NaN(), 0}, false},
		{"NaNY", Vec2{0, math.NaN()}, false},
		{"PosInf", Vec2{math.Inf(1), 0}, false},
		{"NegInf", Vec2{0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.want {
				t.Errorf("IsFinite(%+v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}
