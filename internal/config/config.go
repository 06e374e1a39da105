package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"
)

type Config struct {
	Video VideoConfig `toml:"video"`
	Audio AudioConfig `toml:"audio"`
	Input InputConfig `toml:"input"`
}

type VideoConfig struct {
	Scale        int  `toml:"scale"`
	DisableVSync bool `toml:"disable_vsync"`
}

type AudioConfig struct {
	Disabled bool    `toml:"disabled"`
	Volume   float64 `toml:"volume"`
}

// InputConfig maps GLFW key names onto pad buttons, one table per player.
type InputConfig struct {
	Player1 KeyMap `toml:"player1"`
	Player2 KeyMap `toml:"player2"`
}

type KeyMap struct {
	A      string `toml:"a"`
	B      string `toml:"b"`
	Select string `toml:"select"`
	Start  string `toml:"start"`
	Up     string `toml:"up"`
	Down   string `toml:"down"`
	Left   string `toml:"left"`
	Right  string `toml:"right"`
}

func Default() Config {
	return Config{
		Video: VideoConfig{Scale: 3},
		Audio: AudioConfig{Volume: 0.5},
		Input: InputConfig{
			Player1: KeyMap{
				A: "z", B: "x", Select: "right shift", Start: "enter",
				Up: "up", Down: "down", Left: "left", Right: "right",
			},
			Player2: KeyMap{
				A: "a", B: "s", Select: "left shift", Start: "e",
				Up: "i", Down: "k", Left: "j", Right: "l",
			},
		},
	}
}

var Dir = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("famicore")
	if err := configdir.MakePath(dir); err != nil {
		return "."
	}
	return dir
})

const cfgFilename = "config.toml"

// LoadOrDefault reads config.toml from the famicore config directory. On
// first run the file does not exist yet, so the defaults are written there
// for the user to edit; an unreadable file just yields the defaults.
func LoadOrDefault() Config {
	path := filepath.Join(Dir(), cfgFilename)
	cfg, err := load(path)
	if os.IsNotExist(err) {
		save(path, cfg)
	}
	return cfg
}

// Save writes the configuration into the famicore config directory.
func Save(cfg Config) error {
	return save(filepath.Join(Dir(), cfgFilename), cfg)
}

func load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), err
	}
	if cfg.Video.Scale < 1 {
		cfg.Video.Scale = 1
	}
	return cfg, nil
}

func save(path string, cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}
