package sliceutil_test

import (
	"advent/sliceutil"
	"testing"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		target int
		want   bool
	}{
		{"Found", []int{1, 2, 3}, 2, true},
		{"NotFound", []int{1, 2, 3}, 4, false},
		{"Empty", []int{}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sliceutil.Contains(tt.input, tt.target); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFind(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}

	t.Run("Found", func(t *testing.T) {
		val, found := sliceutil.Find(input, func(x int) bool { return x > 3 })
		if !found || val != 4 {
			t.Errorf("Find() = (%v, %v), want (4, true)", val, found)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		val, found := sliceutil.Find(input, func(x int) bool { return x > 10 })
		if found {
			t.Errorf("Find() should not find element > 10, got %v", val)
		}
	})
}

func TestFindIndex(t *testing.T) {
	tests := []struct {
		name       string
		collection []int
		predicate  func(int) bool
		want       int
	}{
		{"FoundFirst", []int{1, 2, 3}, func(x int) bool { return x == 1 }, 0},
		{"FoundLast", []int{1, 2, 3}, func(x int) bool { return x == 3 }, 2},
		{"NotFound", []int{1, 2, 3}, func(x int) bool { return x == 4 }, -1},
		{"Empty", []int{}, func(x int) bool { return true }, -1},
		{"Duplicates", []int{1, 2, 2, 3}, func(x int) bool { return x == 2 }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sliceutil.FindIndex(tt.collection, tt.predicate); got != tt.want {
				t.Errorf("FindIndex() = %v, want %v", got, tt.want)
			}
		})
	}
}
