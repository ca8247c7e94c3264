package dag

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

func TestAddEdge(t *testing.T) {
	g := New()

	if err := g.AddEdge("A", "B"); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}
	if err := g.AddEdge("A", "B"); err != nil {
		t.Fatalf("AddEdge() duplicate error = %v", err)
	}

	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1 (duplicates collapse)", g.EdgeCount())
	}
	if got := g.Prerequisites("B"); !slices.Equal(got, []string{"A"}) {
		t.Errorf("Prerequisites(B) = %v, want [A]", got)
	}
	if got := g.Prerequisites("A"); got != nil {
		t.Errorf("Prerequisites(A) = %v, want nil", got)
	}
	if got := g.Dependents("A"); !slices.Equal(got, []string{"B"}) {
		t.Errorf("Dependents(A) = %v, want [B]", got)
	}
}

func TestAddEdgeErrors(t *testing.T) {
	tests := []struct {
		name   string
		prereq string
		node   string
		want   error
	}{
		{"empty prereq", "", "A", ErrInvalidNodeID},
		{"empty node", "A", "", ErrInvalidNodeID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			if err := g.AddEdge(tt.prereq, tt.node); !errors.Is(err, tt.want) {
				t.Errorf("AddEdge(%q, %q) error = %v, want %v", tt.prereq, tt.node, err, tt.want)
			}
			if g.NodeCount() != 0 {
				t.Errorf("NodeCount() = %d, want 0 after rejected edge", g.NodeCount())
			}
		})
	}
}

func TestAddNode(t *testing.T) {
	g := New()
	if err := g.AddNode(""); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(\"\") error = %v, want %v", err, ErrInvalidNodeID)
	}
	if err := g.AddNode("Z"); err != nil {
		t.Fatalf("AddNode(Z) error = %v", err)
	}
	if err := g.AddNode("Z"); err != nil {
		t.Fatalf("AddNode(Z) again error = %v", err)
	}
	if !g.Has("Z") || g.NodeCount() != 1 {
		t.Errorf("Has(Z) = %v, NodeCount() = %d; want true, 1", g.Has("Z"), g.NodeCount())
	}
}

func TestReady(t *testing.T) {
	g := New()
	_ = g.AddEdge("C", "A")
	_ = g.AddEdge("C", "F")
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "E")
	_ = g.AddEdge("F", "E")

	tests := []struct {
		name string
		done map[string]bool
		want []string
	}{
		{"nil done", nil, []string{"C"}},
		{"after root", map[string]bool{"C": true}, []string{"A", "F"}},
		{"partial prerequisites", map[string]bool{"C": true, "A": true, "B": true}, []string{"F"}},
		{"all prerequisites", map[string]bool{"C": true, "A": true, "B": true, "F": true}, []string{"E"}},
		{"everything done", map[string]bool{"A": true, "B": true, "C": true, "E": true, "F": true}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Ready(tt.done); !slices.Equal(got, tt.want) {
				t.Errorf("Ready() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadyDoesNotMutateDone(t *testing.T) {
	g := New()
	_ = g.AddEdge("A", "B")

	done := map[string]bool{"A": true}
	_ = g.Ready(done)
	if len(done) != 1 || !done["A"] {
		t.Errorf("Ready() modified done set: %v", done)
	}
}

func TestRootsIncludePrerequisiteOnlyNodes(t *testing.T) {
	// X and Y never appear as a dependent; both must be roots.
	g := New()
	_ = g.AddEdge("Y", "M")
	_ = g.AddEdge("X", "M")
	_ = g.AddNode("Q")

	if got := g.Roots(); !slices.Equal(got, []string{"Q", "X", "Y"}) {
		t.Errorf("Roots() = %v, want [Q X Y]", got)
	}
}

func TestSchedule(t *testing.T) {
	tests := []struct {
		name     string
		edges    [][2]string
		strategy Strategy
		want     string
	}{
		{
			name: "example sequential",
			edges: [][2]string{
				{"C", "A"}, {"C", "F"}, {"A", "B"}, {"A", "D"},
				{"B", "E"}, {"D", "E"}, {"F", "E"},
			},
			strategy: Sequential,
			want:     "CABDFE",
		},
		{
			name: "example batch",
			edges: [][2]string{
				{"C", "A"}, {"C", "F"}, {"A", "B"}, {"A", "D"},
				{"B", "E"}, {"D", "E"}, {"F", "E"},
			},
			strategy: Batch,
			want:     "CAFBDE",
		},
		{
			name:     "single edge",
			edges:    [][2]string{{"A", "B"}},
			strategy: Sequential,
			want:     "AB",
		},
		{
			name:     "empty",
			strategy: Sequential,
			want:     "",
		},
		{
			name:     "independent chains",
			edges:    [][2]string{{"B", "Z"}, {"A", "Y"}},
			strategy: Sequential,
			want:     "ABYZ",
		},
		{
			name:     "unlocked node overtakes waiting node",
			edges:    [][2]string{{"B", "A"}, {"C", "Z"}},
			strategy: Sequential,
			want:     "BACZ",
		},
		{
			name:     "batch keeps waiting node ahead",
			edges:    [][2]string{{"B", "A"}, {"C", "Z"}},
			strategy: Batch,
			want:     "BCAZ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			for _, e := range tt.edges {
				if err := g.AddEdge(e[0], e[1]); err != nil {
					t.Fatalf("AddEdge(%v) error = %v", e, err)
				}
			}

			order, err := g.Schedule(WithStrategy(tt.strategy))
			if err != nil {
				t.Fatalf("Schedule() error = %v", err)
			}
			if got := strings.Join(order, ""); got != tt.want {
				t.Errorf("Schedule() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScheduleCycle(t *testing.T) {
	// A and B are schedulable; C, D, E form a cycle; F waits behind it.
	g := New()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "D")
	_ = g.AddEdge("D", "E")
	_ = g.AddEdge("E", "C")
	_ = g.AddEdge("E", "F")

	for _, s := range []Strategy{Sequential, Batch} {
		t.Run(s.String(), func(t *testing.T) {
			order, err := g.Schedule(WithStrategy(s))
			if !errors.Is(err, ErrIncompleteSchedule) {
				t.Fatalf("Schedule() error = %v, want ErrIncompleteSchedule", err)
			}
			if !slices.Equal(order, []string{"A", "B"}) {
				t.Errorf("partial order = %v, want [A B]", order)
			}

			var ie *IncompleteError
			if !errors.As(err, &ie) {
				t.Fatalf("error %T is not *IncompleteError", err)
			}
			if !slices.Equal(ie.Remaining, []string{"C", "D", "E", "F"}) {
				t.Errorf("Remaining = %v, want [C D E F]", ie.Remaining)
			}
			if !strings.Contains(err.Error(), "2 of 6") {
				t.Errorf("Error() = %q, want it to mention 2 of 6", err.Error())
			}
		})
	}
}

func TestScheduleRoundHook(t *testing.T) {
	g := New()
	_ = g.AddEdge("C", "A")
	_ = g.AddEdge("C", "F")

	var rounds [][]string
	_, err := g.Schedule(WithStrategy(Batch), WithRoundHook(func(round int, ready []string) {
		if round != len(rounds)+1 {
			t.Errorf("round = %d, want %d", round, len(rounds)+1)
		}
		rounds = append(rounds, ready)
	}))
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	want := [][]string{{"C"}, {"A", "F"}}
	if len(rounds) != len(want) {
		t.Fatalf("got %d rounds, want %d", len(rounds), len(want))
	}
	for i := range want {
		if !slices.Equal(rounds[i], want[i]) {
			t.Errorf("round %d ready = %v, want %v", i+1, rounds[i], want[i])
		}
	}
}

// randomGraph builds an acyclic graph by only adding edges that point
// forward in a shuffled node permutation.
func randomGraph(r *rand.Rand, n int, density float64) *Graph {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = string(rune('A' + i))
	}
	r.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	g := New()
	for _, id := range ids {
		_ = g.AddNode(id)
	}
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if r.Float64() < density {
				_ = g.AddEdge(ids[i], ids[j])
			}
		}
	}
	return g
}

func TestScheduleProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(2018, 7))

	for trial := 0; trial < 200; trial++ {
		g := randomGraph(r, 1+r.IntN(26), r.Float64()*0.4)

		for _, s := range []Strategy{Sequential, Batch} {
			var rounds [][]string
			order, err := g.Schedule(WithStrategy(s), WithRoundHook(func(_ int, ready []string) {
				rounds = append(rounds, ready)
			}))
			if err != nil {
				t.Fatalf("trial %d %v: Schedule() error = %v", trial, s, err)
			}

			// Every node exactly once.
			if len(order) != g.NodeCount() {
				t.Fatalf("trial %d %v: len(order) = %d, want %d", trial, s, len(order), g.NodeCount())
			}
			pos := PosMap(order)
			if len(pos) != len(order) {
				t.Fatalf("trial %d %v: order has duplicates: %v", trial, s, order)
			}

			// Linear extension.
			for _, e := range g.Edges() {
				if pos[e[0]] >= pos[e[1]] {
					t.Fatalf("trial %d %v: %s scheduled after dependent %s in %v", trial, s, e[0], e[1], order)
				}
			}

			// Nodes ready in the same round are emitted in ascending order.
			for _, ready := range rounds {
				for i := 1; i < len(ready); i++ {
					if pos[ready[i-1]] >= pos[ready[i]] {
						t.Fatalf("trial %d %v: round %v emitted out of order in %v", trial, s, ready, order)
					}
				}
			}

			// Deterministic.
			again, _ := g.Schedule(WithStrategy(s))
			if !slices.Equal(order, again) {
				t.Fatalf("trial %d %v: Schedule() not deterministic: %v vs %v", trial, s, order, again)
			}
		}
	}
}

func TestSelfEdgeIsCycle(t *testing.T) {
	g := New()
	if err := g.AddEdge("B", "C"); err != nil {
		t.Fatalf("AddEdge(B, C) error = %v", err)
	}
	if err := g.AddEdge("A", "A"); err != nil {
		t.Fatalf("AddEdge(A, A) error = %v", err)
	}

	if got := g.Prerequisites("A"); !slices.Equal(got, []string{"A"}) {
		t.Errorf("Prerequisites(A) = %v, want [A]", got)
	}
	if got := g.Roots(); !slices.Equal(got, []string{"B"}) {
		t.Errorf("Roots() = %v, want [B]", got)
	}
	if err := g.Validate(); !errors.Is(err, ErrGraphHasCycle) {
		t.Errorf("Validate() error = %v, want %v", err, ErrGraphHasCycle)
	}

	for _, s := range []Strategy{Sequential, Batch} {
		order, err := g.Schedule(WithStrategy(s))
		if !errors.Is(err, ErrIncompleteSchedule) {
			t.Fatalf("%s: Schedule() error = %v, want %v", s, err, ErrIncompleteSchedule)
		}
		if !slices.Equal(order, []string{"B", "C"}) {
			t.Errorf("%s: Schedule() = %v, want [B C]", s, order)
		}
		var ie *IncompleteError
		if !errors.As(err, &ie) || !slices.Equal(ie.Remaining, []string{"A"}) {
			t.Errorf("%s: Remaining = %v, want [A]", s, ie)
		}
	}

	if _, err := g.Simulate(2, letterCost(0)); !errors.Is(err, ErrIncompleteSchedule) {
		t.Errorf("Simulate() error = %v, want %v", err, ErrIncompleteSchedule)
	}
}

func TestValidate(t *testing.T) {
	acyclic := New()
	_ = acyclic.AddEdge("A", "B")
	_ = acyclic.AddEdge("B", "C")
	_ = acyclic.AddEdge("A", "C")
	if err := acyclic.Validate(); err != nil {
		t.Errorf("Validate() acyclic error = %v", err)
	}

	cyclic := New()
	_ = cyclic.AddEdge("A", "B")
	_ = cyclic.AddEdge("B", "C")
	_ = cyclic.AddEdge("C", "A")
	if err := cyclic.Validate(); !errors.Is(err, ErrGraphHasCycle) {
		t.Errorf("Validate() cyclic error = %v, want %v", err, ErrGraphHasCycle)
	}

	if err := New().Validate(); err != nil {
		t.Errorf("Validate() empty error = %v", err)
	}
}

func TestEdges(t *testing.T) {
	g := New()
	_ = g.AddEdge("F", "E")
	_ = g.AddEdge("B", "E")
	_ = g.AddEdge("C", "A")

	want := [][2]string{{"C", "A"}, {"B", "E"}, {"F", "E"}}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"", 0, true},
		{"  sequential", 0, true},
		{"sequential", Sequential, false},
		{"BATCH", Batch, false},
		{"random", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStrategy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStrategy(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
