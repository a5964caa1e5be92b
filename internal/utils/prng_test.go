package utils

import "testing"

func TestChooseWeighted(t *testing.T) {
	s := NewPRNGService(42)

	tests := []struct {
		name    string
		weights []int
		valid   func(int) bool
	}{
		{"Empty", nil, func(i int) bool { return i == -1 }},
		{"Single entry", []int{5}, func(i int) bool { return i == 0 }},
		{"Zero total", []int{0, 0}, func(i int) bool { return i == 0 }},
		{"In range", []int{1, 2, 3}, func(i int) bool { return i >= 0 && i < 3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for n := 0; n < 100; n++ {
				if got := s.ChooseWeighted(tt.weights); !tt.valid(got) {
					t.Fatalf("ChooseWeighted(%v) = %d", tt.weights, got)
				}
			}
		})
	}
}

func TestChooseWeightedSkipsZeroWeights(t *testing.T) {
	s := NewPRNGService(7)
	weights := []int{0, 10, 0}
	for n := 0; n < 200; n++ {
		if got := s.ChooseWeighted(weights); got != 1 {
			t.Fatalf("expected only index 1 to be drawn, got %d", got)
		}
	}
}

func TestSeededDeterminism(t *testing.T) {
	a := NewPRNGService(99)
	b := NewPRNGService(99)
	for n := 0; n < 50; n++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed produced diverging sequences")
		}
	}
}

func TestRangeBounds(t *testing.T) {
	s := NewPRNGService(3)
	for n := 0; n < 100; n++ {
		v := s.Range(40, 60)
		if v < 40 || v >= 60 {
			t.Fatalf("Range(40,60) = %v out of bounds", v)
		}
		i := s.IntRange(10, 120)
		if i < 10 || i > 120 {
			t.Fatalf("IntRange(10,120) = %d out of bounds", i)
		}
	}
}
