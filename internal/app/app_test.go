package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-size", "80", "-particles", "900", "-seed", "7", "-mono"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Size != 80 || cfg.Particles != 900 || cfg.Seed != 7 || !cfg.Mono {
		t.Fatalf("cfg = %+v", cfg)
	}
	params := cfg.SimParams()
	if params["l"] != "80" || params["n"] != "900" || params["seed"] != "7" {
		t.Fatalf("params = %v", params)
	}
}

func TestNextTPS(t *testing.T) {
	cases := []struct {
		tps, dir, want int
	}{
		{30, 1, 60},
		{30, -1, 15},
		{1, -1, MinTPS},
		{MaxTPS, 1, MaxTPS},
		{1500, 1, MaxTPS},
		{30, 0, 30},
	}
	for _, tc := range cases {
		if got := nextTPS(tc.tps, tc.dir); got != tc.want {
			t.Fatalf("nextTPS(%d, %d) = %d, want %d", tc.tps, tc.dir, got, tc.want)
		}
	}
}
