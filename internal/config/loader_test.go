package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseRunner(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if want := DefaultRunnerConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded YAML drifted from DefaultRunnerConfig:\n got %+v\nwant %+v", cfg, want)
	}
}

func TestParseRunnerPartialOverride(t *testing.T) {
	data := []byte("enemy:\n  speed: 12\nspawn:\n  base_interval_ms: 400\n")

	cfg, err := ParseRunner(data)
	if err != nil {
		t.Fatalf("ParseRunner() error = %v", err)
	}
	if cfg.Enemy.Speed != 12 {
		t.Errorf("enemy.speed = %v, expected 12", cfg.Enemy.Speed)
	}
	if cfg.Spawn.BaseIntervalMS != 400 {
		t.Errorf("spawn.base_interval_ms = %v, expected 400", cfg.Spawn.BaseIntervalMS)
	}
	// Untouched keys keep their defaults
	if cfg.Enemy.Width != 160 || cfg.Player.JumpImpulse != 32 {
		t.Errorf("defaults lost: enemy.width=%v player.jump_impulse=%v", cfg.Enemy.Width, cfg.Player.JumpImpulse)
	}
}

func TestParseRunnerRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"zero world", "world:\n  width: 0\n", "world.width"},
		{"empty jitter", "spawn:\n  jitter_min_ms: 900\n  jitter_max_ms: 900\n", "jitter"},
		{"player too big", "player:\n  width: 1000\n", "does not fit"},
		{"bad progression", "difficulty:\n  progression:\n    type: lunar\n", "lunar"},
		{"malformed", "world: [", "yaml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRunner([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, skipped, err := LoadRunner(path)
	if err != nil || len(skipped) != 0 {
		t.Fatalf("LoadRunner() error = %v, skipped = %v", err, skipped)
	}
	if cfg.Player.Speed != 9 {
		t.Errorf("player.speed = %v, expected 9", cfg.Player.Speed)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	cfg, _, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected wrapped not-exist error, got %v", err)
	}
	if cfg.World.Width != 800 {
		t.Error("failed load should still hand back defaults")
	}
}

// isolateSearchPaths points HOME and the working directory at empty temp
// dirs and returns them.
func isolateSearchPaths(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return home, work
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, RunnerFile)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRunnerSearchOrder(t *testing.T) {
	tests := []struct {
		name      string
		user      string // contents of ~/.runner/configs/runner.yaml, "" = absent
		local     string // contents of ./configs/runner.yaml, "" = absent
		wantSpeed float64
		wantSkips int
	}{
		{"nothing found", "", "", 8, 0},
		{"user file wins", "enemy:\n  speed: 11\n", "enemy:\n  speed: 12\n", 11, 0},
		{"local file used", "", "enemy:\n  speed: 12\n", 12, 0},
		{"invalid user file falls back to local", "world: {width: -5}\n", "enemy:\n  speed: 12\n", 12, 1},
		{"invalid user file falls back to defaults", "world: {width: -5}\n", "", 8, 1},
		{"both invalid", "world: [", "spawn: {jitter_min_ms: 9, jitter_max_ms: 1}\n", 8, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			home, work := isolateSearchPaths(t)
			if tc.user != "" {
				writeConfig(t, filepath.Join(home, ".runner", "configs"), tc.user)
			}
			if tc.local != "" {
				writeConfig(t, filepath.Join(work, "configs"), tc.local)
			}

			cfg, skipped, err := LoadRunner("")
			if err != nil {
				t.Fatalf("LoadRunner() error = %v", err)
			}
			if cfg.Enemy.Speed != tc.wantSpeed {
				t.Errorf("enemy.speed = %v, expected %v", cfg.Enemy.Speed, tc.wantSpeed)
			}
			if len(skipped) != tc.wantSkips {
				t.Errorf("skipped = %v, expected %d entries", skipped, tc.wantSkips)
			}
		})
	}
}

func TestLoadRunnerReportsSkippedUserFile(t *testing.T) {
	home, _ := isolateSearchPaths(t)
	path := writeConfig(t, filepath.Join(home, ".runner", "configs"), "world: {width: -5}\n")

	cfg, skipped, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() error = %v", err)
	}
	if cfg.World.Width != 800 {
		t.Errorf("world.width = %v, expected default 800", cfg.World.Width)
	}
	if len(skipped) != 1 {
		t.Fatalf("skipped = %v, expected the user file", skipped)
	}
	if skipped[0].Path != path {
		t.Errorf("skipped path = %q, expected %q", skipped[0].Path, path)
	}
	if !strings.Contains(skipped[0].Error(), "world.width") {
		t.Errorf("skip reason %q does not name the bad key", skipped[0].Error())
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Background.Speed = 3

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := ParseRunner(data)
	if err != nil {
		t.Fatalf("ParseRunner() error = %v", err)
	}
	if got.Background.Speed != 3 {
		t.Errorf("background.speed = %v, expected 3", got.Background.Speed)
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
		{"", false, 0.0}, // untouched defaults
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyRunnerPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tc.wantLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.wantLevel)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
}
