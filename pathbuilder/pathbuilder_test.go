package pathbuilder

import (
	"reflect"
	"testing"

	"github.com/arcway/jpsgrid/grid"
)

func TestBuild_StartEqualsEnd(t *testing.T) {
	g, _ := grid.New(3, 3)
	pos := g.Pos(1, 1)
	got := Build(g, nil, pos, pos)
	if !reflect.DeepEqual(got, []int{pos}) {
		t.Errorf("Build(start==end) = %v; want [%d]", got, pos)
	}
}

func TestBuild_DirectLink(t *testing.T) {
	g, _ := grid.New(5, 1)
	start, end := g.Pos(0, 0), g.Pos(4, 0)
	comeFrom := make([]int, g.Len())
	for i := range comeFrom {
		comeFrom[i] = -1
	}
	comeFrom[end] = start
	got := Build(g, comeFrom, start, end)
	want := []int{start, end}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build = %v; want %v", got, want)
	}
}

func TestBuild_InsertsMidJumpBend(t *testing.T) {
	// Parent link from (0,0) straight to (5,2): diagonal run of 2 then
	// axial run of 3, collapsed into one jump-point parent. The bend
	// point must be (2,2) (2 diagonal steps from (0,0) toward (5,2)).
	g, _ := grid.New(6, 3)
	start := g.Pos(0, 0)
	end := g.Pos(5, 2)
	comeFrom := make([]int, g.Len())
	for i := range comeFrom {
		comeFrom[i] = -1
	}
	comeFrom[end] = start

	got := Build(g, comeFrom, start, end)
	want := []int{start, g.Pos(2, 2), end}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build = %v; want %v", got, want)
	}
}

func TestBuild_NoBendOnPureDiagonal(t *testing.T) {
	g, _ := grid.New(5, 5)
	start, end := g.Pos(0, 0), g.Pos(4, 4)
	comeFrom := make([]int, g.Len())
	for i := range comeFrom {
		comeFrom[i] = -1
	}
	comeFrom[end] = start
	got := Build(g, comeFrom, start, end)
	want := []int{start, end}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build = %v; want %v (no bend on a perfect diagonal)", got, want)
	}
}

func TestBuild_MultiHopChain(t *testing.T) {
	g, _ := grid.New(10, 10)
	a, b, c := g.Pos(0, 0), g.Pos(3, 3), g.Pos(8, 3)
	comeFrom := make([]int, g.Len())
	for i := range comeFrom {
		comeFrom[i] = -1
	}
	comeFrom[b] = a
	comeFrom[c] = b
	got := Build(g, comeFrom, a, c)
	want := []int{a, b, c}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build = %v; want %v", got, want)
	}
}
