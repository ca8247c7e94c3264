package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/aoc2018/pkg/dag"
)

func exampleGraph(t *testing.T) *dag.Graph {
	t.Helper()
	g := dag.New()
	for _, e := range [][2]string{{"C", "A"}, {"C", "F"}, {"A", "B"}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%s, %s) error = %v", e[0], e[1], err)
		}
	}
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(exampleGraph(t), Options{})

	want := []string{
		"digraph steps {",
		`  "A" [label="A"];`,
		`  "C" -> "A";`,
		`  "C" -> "F";`,
		`  "A" -> "B";`,
	}
	for _, w := range want {
		if !strings.Contains(dot, w) {
			t.Errorf("ToDOT() missing %q in:\n%s", w, dot)
		}
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Errorf("ToDOT() should end with closing brace")
	}
}

func TestToDOTDeterministic(t *testing.T) {
	g := exampleGraph(t)
	first := ToDOT(g, Options{})
	for range 10 {
		if got := ToDOT(g, Options{}); got != first {
			t.Fatalf("ToDOT() not deterministic:\n%s\nvs\n%s", first, got)
		}
	}
}

func TestToDOTWithOrder(t *testing.T) {
	dot := ToDOT(exampleGraph(t), Options{Order: []string{"C", "A"}})

	if !strings.Contains(dot, `"C" [label="1. C"]`) {
		t.Errorf("ToDOT() should number scheduled nodes:\n%s", dot)
	}
	if !strings.Contains(dot, `"A" [label="2. A"]`) {
		t.Errorf("ToDOT() should number scheduled nodes:\n%s", dot)
	}
	if !strings.Contains(dot, `"B" [label="B", style="filled,dashed"`) {
		t.Errorf("ToDOT() should dash unscheduled nodes:\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(dag.New(), Options{})
	if strings.Contains(dot, "->") || strings.Contains(dot, "label=") {
		t.Errorf("ToDOT(empty) should have no nodes or edges:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="44pt" viewBox="0.00 0.00 62.00 44.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))

	if !strings.HasPrefix(got, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 44.00" width="62" height="44">`) {
		t.Errorf("normalizeViewBox() = %s", got)
	}
	if !strings.HasSuffix(got, "<g/></svg>") {
		t.Errorf("normalizeViewBox() should keep the body: %s", got)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() without viewBox = %s, want unchanged", got)
	}
}
