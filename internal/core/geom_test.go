package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 2, Y: 3}.Add(-1, 4)
	if p != (Point{X: 1, Y: 7}) {
		t.Errorf("Add() = %+v, expected {1 7}", p)
	}
}
