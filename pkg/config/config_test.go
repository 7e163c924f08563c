package config_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/gregjohnson2017/bounce/pkg/config"
)

func TestParseVelocity(t *testing.T) {
	tests := []struct {
		in   string
		want float32
	}{
		{"5", 5},
		{"-7", -7},
		{"+3", 3},
		{"  12", 12},
		{"12abc", 12},
		{"2.9", 2},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"99999999999", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := config.ParseVelocity(tt.in); got != tt.want {
				t.Fatalf("ParseVelocity(%q) = %v, expected %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromArgs(t *testing.T) {
	t.Run("no argument keeps default", func(t *testing.T) {
		if !reflect.DeepEqual(config.FromArgs(nil), config.Default()) {
			t.Fatalf("expected default config")
		}
	})
	t.Run("argument overrides velocity", func(t *testing.T) {
		cfg := config.FromArgs([]string{"-9"})
		if cfg.Velocity != -9 {
			t.Fatalf("expected velocity -9, got %v", cfg.Velocity)
		}
	})
	t.Run("non-numeric argument yields zero", func(t *testing.T) {
		cfg := config.FromArgs([]string{"fast"})
		if cfg.Velocity != 0 {
			t.Fatalf("expected velocity 0, got %v", cfg.Velocity)
		}
	})
	t.Run("extra arguments are ignored", func(t *testing.T) {
		cfg := config.FromArgs([]string{"3", "4"})
		if cfg.Velocity != 3 {
			t.Fatalf("expected velocity 3, got %v", cfg.Velocity)
		}
	})
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.ScreenWidth != 400 || cfg.ScreenHeight != 200 {
		t.Fatalf("unexpected screen size %vx%v", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.HalfWidth != 20 || cfg.Velocity != 5 {
		t.Fatalf("unexpected box defaults: half width %v, velocity %v", cfg.HalfWidth, cfg.Velocity)
	}
	if cfg.FrameDelay != 200*time.Microsecond {
		t.Fatalf("unexpected frame delay %v", cfg.FrameDelay)
	}
}
