package feature

import (
	"errors"
	"math"
	"testing"

	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
)

func testRef(path string) Ref {
	return newRef(Identifier{Namespace: "test", Path: path})
}

func TestTableResolveDistribution(t *testing.T) {
	a, b, fallback := testRef("a"), testRef("b"), testRef("fallback")
	table, err := NewTable(fallback, Entry{Feature: a, Chance: 0.1}, Entry{Feature: b, Chance: 0.25})
	if err != nil {
		t.Fatalf("compose table: %v", err)
	}

	const trials = 100000
	r := rand.NewRandom(42)
	counts := map[Ref]int{}
	for i := 0; i < trials; i++ {
		counts[table.Resolve(r)]++
	}
	want := map[Ref]float64{a: 0.1, b: 0.225, fallback: 0.675}
	for ref, p := range want {
		if got := float64(counts[ref]) / trials; math.Abs(got-p) > 0.01 {
			t.Fatalf("expected %v to be selected with a rate close to %v, got %v", ref, p, got)
		}
	}
}

func TestTableProbabilities(t *testing.T) {
	table, err := NewTable(testRef("fallback"), Entry{Feature: testRef("a"), Chance: 0.1}, Entry{Feature: testRef("b"), Chance: 0.25})
	if err != nil {
		t.Fatalf("compose table: %v", err)
	}
	probs := table.Probabilities()
	want := []float64{0.1, 0.225, 0.675}
	if len(probs) != len(want) {
		t.Fatalf("expected %d probabilities, got %v", len(want), probs)
	}
	var sum float64
	for i, p := range probs {
		if math.Abs(p-want[i]) > 1e-9 {
			t.Fatalf("probability %d: expected %v, got %v", i, want[i], p)
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("expected probabilities to sum to 1, got %v", sum)
	}
}

func TestTableResolveDrawsInOrder(t *testing.T) {
	a, b, fallback := testRef("a"), testRef("b"), testRef("fallback")
	table, _ := NewTable(fallback, Entry{Feature: a, Chance: 0.5}, Entry{Feature: b, Chance: 0.5})

	tests := []struct {
		floats []float64
		want   Ref
		left   int
	}{
		{floats: []float64{0.2, 0.9}, want: a, left: 1},
		{floats: []float64{0.7, 0.1}, want: b, left: 0},
		{floats: []float64{0.5, 0.5}, want: fallback, left: 0},
	}
	for _, test := range tests {
		seq := rand.NewSequence(nil, test.floats)
		if got := table.Resolve(seq); got != test.want {
			t.Fatalf("draws %v: expected %v, got %v", test.floats, test.want, got)
		}
		if _, left := seq.Remaining(); left != test.left {
			t.Fatalf("draws %v: expected %d draws left, got %d", test.floats, test.left, left)
		}
	}
}

func TestEmptyTableSelectsFallback(t *testing.T) {
	fallback := testRef("fallback")
	table, err := NewTable(fallback)
	if err != nil {
		t.Fatalf("compose table: %v", err)
	}
	// The sequence panics on any draw.
	seq := rand.NewSequence(nil, nil)
	for i := 0; i < 10; i++ {
		if got := table.Resolve(seq); got != fallback {
			t.Fatalf("expected fallback, got %v", got)
		}
	}
	if probs := table.Probabilities(); len(probs) != 1 || probs[0] != 1 {
		t.Fatalf("expected fallback probability of 1, got %v", probs)
	}
}

func TestNewTableRejectsInvalidEntries(t *testing.T) {
	tests := map[string]func() (Table, error){
		"no fallback": func() (Table, error) { return NewTable(Ref{}) },
		"no feature": func() (Table, error) {
			return NewTable(testRef("fallback"), Entry{Chance: 0.5})
		},
		"zero chance": func() (Table, error) {
			return NewTable(testRef("fallback"), Entry{Feature: testRef("a")})
		},
		"chance above one": func() (Table, error) {
			return NewTable(testRef("fallback"), Entry{Feature: testRef("a"), Chance: 1.01})
		},
		"NaN chance": func() (Table, error) {
			return NewTable(testRef("fallback"), Entry{Feature: testRef("a"), Chance: math.NaN()})
		},
	}
	for name, compose := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := compose(); !errors.Is(err, ErrInvalidTable) {
				t.Fatalf("expected ErrInvalidTable, got %v", err)
			}
		})
	}
}

func TestTableEntriesAreCopied(t *testing.T) {
	entries := []Entry{{Feature: testRef("a"), Chance: 0.5}}
	table, _ := NewTable(testRef("fallback"), entries...)
	entries[0].Chance = 1
	if got := table.Entries()[0].Chance; got != 0.5 {
		t.Fatalf("expected table to keep its own entries, got chance %v", got)
	}
}
