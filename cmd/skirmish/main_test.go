package main

import "testing"

func TestEffectiveWorkers(t *testing.T) {
	cases := []struct {
		workers int
		seed    int64
		want    int
	}{
		{1, 0, 1},
		{8, 0, 8},
		{1, 42, 1},
		{8, 42, 1},
	}
	for _, c := range cases {
		if got := effectiveWorkers(c.workers, c.seed); got != c.want {
			t.Errorf("effectiveWorkers(%d, %d) = %d, want %d", c.workers, c.seed, got, c.want)
		}
	}
}
