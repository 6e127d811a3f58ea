package main

import "testing"

func TestCheckSweep(t *testing.T) {
	if err := checkSweep(4, 3, []int{2, 5}); err != nil {
		t.Fatalf("valid sweep rejected: %v", err)
	}
	for name, tc := range map[string]struct {
		workers, seeds int
		radii          []int
	}{
		"no workers":       {0, 3, []int{2}},
		"negative workers": {-1, 3, []int{2}},
		"no seeds":         {4, 0, []int{2}},
		"no radii":         {4, 3, nil},
		"negative radius":  {4, 3, []int{2, -1}},
	} {
		if err := checkSweep(tc.workers, tc.seeds, tc.radii); err == nil {
			t.Fatalf("%s: checkSweep accepted it", name)
		}
	}
}

func TestIntListSet(t *testing.T) {
	l := intList{9}
	if err := l.Set("1, 4,7"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if l.String() != "1,4,7" {
		t.Fatalf("list = %s", l.String())
	}
	if err := l.Set("1,x"); err == nil {
		t.Fatal("Set accepted a non-integer")
	}
}
