package core

import "testing"

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name     string
		start    Point
		dir      Direction
		expected Point
	}{
		{"right", Point{X: 10, Y: 10}, DirRight, Point{X: 11, Y: 10}},
		{"left", Point{X: 10, Y: 10}, DirLeft, Point{X: 9, Y: 10}},
		{"up", Point{X: 10, Y: 10}, DirUp, Point{X: 10, Y: 9}},
		{"down", Point{X: 10, Y: 10}, DirDown, Point{X: 10, Y: 11}},
		{"at origin", Point{X: 0, Y: 0}, DirLeft, Point{X: -1, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.start.Add(tc.dir)
			if result != tc.expected {
				t.Errorf("Add() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestSameAxis(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Direction
		expected bool
	}{
		{"right vs left (reversal)", DirRight, DirLeft, true},
		{"left vs right (reversal)", DirLeft, DirRight, true},
		{"up vs down (reversal)", DirUp, DirDown, true},
		{"right vs right (re-press)", DirRight, DirRight, true},
		{"up vs up (re-press)", DirUp, DirUp, true},
		{"right vs up (turn)", DirRight, DirUp, false},
		{"right vs down (turn)", DirRight, DirDown, false},
		{"up vs left (turn)", DirUp, DirLeft, false},
		{"down vs right (turn)", DirDown, DirRight, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := SameAxis(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("SameAxis(%v, %v) = %v, expected %v", tc.a, tc.b, result, tc.expected)
			}
			// The predicate is symmetric
			if SameAxis(tc.b, tc.a) != tc.expected {
				t.Errorf("SameAxis(%v, %v) (reversed) = %v, expected %v", tc.b, tc.a, !tc.expected, tc.expected)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected string
	}{
		{DirUp, "up"},
		{DirDown, "down"},
		{DirLeft, "left"},
		{DirRight, "right"},
		{Direction{DX: 2, DY: 0}, "unknown"},
	}

	for _, tc := range tests {
		if tc.dir.String() != tc.expected {
			t.Errorf("String() = %q, expected %q", tc.dir.String(), tc.expected)
		}
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action   Action
		expected Direction
		ok       bool
	}{
		{ActionUp, DirUp, true},
		{ActionDown, DirDown, true},
		{ActionLeft, DirLeft, true},
		{ActionRight, DirRight, true},
		{ActionPause, Direction{}, false},
		{ActionStart, Direction{}, false},
		{ActionNone, Direction{}, false},
	}

	for _, tc := range tests {
		dir, ok := tc.action.Direction()
		if ok != tc.ok {
			t.Errorf("%v.Direction() ok = %v, expected %v", tc.action, ok, tc.ok)
		}
		if ok && dir != tc.expected {
			t.Errorf("%v.Direction() = %v, expected %v", tc.action, dir, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
