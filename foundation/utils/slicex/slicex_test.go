// File: slicex_test.go
// Title: Slice Utilities Tests
// Description: Tests for the slicex helpers including nil and empty inputs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation with comprehensive coverage
// - 2026-10-17 v0.2.0: Reduced with the package

package slicex

import (
	"reflect"
	"strconv"
	"testing"
)

func TestFilter(t *testing.T) {
	t.Run("filter even numbers", func(t *testing.T) {
		result := Filter([]int{1, 2, 3, 4, 5, 6}, func(x int) bool { return x%2 == 0 })
		if !reflect.DeepEqual(result, []int{2, 4, 6}) {
			t.Errorf("Filter() = %v, want [2 4 6]", result)
		}
	})

	t.Run("filter nil slice", func(t *testing.T) {
		if result := Filter(nil, func(x int) bool { return x > 0 }); result != nil {
			t.Errorf("Filter() = %v, want nil", result)
		}
	})

	t.Run("nil predicate", func(t *testing.T) {
		if result := Filter([]int{1}, nil); result != nil {
			t.Errorf("Filter() = %v, want nil", result)
		}
	})
}

func TestMap(t *testing.T) {
	result := Map([]int{1, 22, 333}, strconv.Itoa)
	if !reflect.DeepEqual(result, []string{"1", "22", "333"}) {
		t.Errorf("Map() = %v", result)
	}

	if Map[int, string](nil, strconv.Itoa) != nil {
		t.Error("Map(nil) should return nil")
	}
}

func TestReduce(t *testing.T) {
	sum := Reduce([]int{1, 2, 3}, 10, func(acc, x int) int { return acc + x })
	if sum != 16 {
		t.Errorf("Reduce() = %d, want 16", sum)
	}

	if got := Reduce[int, int](nil, 5, func(acc, x int) int { return acc + x }); got != 5 {
		t.Errorf("Reduce(nil) = %d, want initial value", got)
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil", nil, nil},
		{"empty", []string{}, []string{}},
		{"single", []string{"a"}, []string{"a"}},
		{"clusters", []string{"é", "a", "🇩🇪"}, []string{"🇩🇪", "a", "é"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reverse(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Reverse() = %q, want %q", got, tt.want)
			}
		})
	}

	input := []int{1, 2, 3}
	Reverse(input)
	if !reflect.DeepEqual(input, []int{1, 2, 3}) {
		t.Error("Reverse() must not modify its input")
	}
}

func TestRepeat(t *testing.T) {
	if got := Repeat("ab", 3); !reflect.DeepEqual(got, []string{"ab", "ab", "ab"}) {
		t.Errorf("Repeat() = %v", got)
	}
	for _, n := range []int{0, -1} {
		if got := Repeat("x", n); got != nil {
			t.Errorf("Repeat(x, %d) = %v, want nil", n, got)
		}
	}
}

func TestCloneAndTake(t *testing.T) {
	input := []int{1, 2, 3}

	clone := Clone(input)
	clone[0] = 99
	if input[0] != 1 {
		t.Error("Clone() must copy")
	}

	tests := []struct {
		n    int
		want []int
	}{
		{-1, nil},
		{0, nil},
		{2, []int{1, 2}},
		{5, []int{1, 2, 3}},
	}
	for _, tt := range tests {
		if got := Take(input, tt.n); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Take(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains([]string{"json", "text"}, "text") {
		t.Error("Contains() should find text")
	}
	if Contains(nil, "text") {
		t.Error("Contains(nil) should be false")
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		input []int
		sep   string
		want  string
	}{
		{nil, ",", ""},
		{[]int{7}, ",", "7"},
		{[]int{72, 105}, " ", "72 105"},
	}
	for _, tt := range tests {
		if got := Join(tt.input, tt.sep); got != tt.want {
			t.Errorf("Join(%v, %q) = %q, want %q", tt.input, tt.sep, got, tt.want)
		}
	}
}

func BenchmarkReverse(b *testing.B) {
	data := Repeat("g", 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Reverse(data)
	}
}

func BenchmarkJoin(b *testing.B) {
	data := Repeat(65, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Join(data, " ")
	}
}
