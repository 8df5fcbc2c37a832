package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/promptforge/genbridge/internal/consts"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Gemini         Gemini         `yaml:"gemini"`
	RetroDiffusion RetroDiffusion `yaml:"retrodiffusion"`
	Sprite         Sprite         `yaml:"sprite"`
	Output         Output         `yaml:"output"`
	Log            Log            `yaml:"log"`
}

type Gemini struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type RetroDiffusion struct {
	Token   string `yaml:"token"`
	BaseURL string `yaml:"base_url"`
}

type Sprite struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Prompt      string `yaml:"prompt"`
	NumImages   int    `yaml:"num_images"`
	PromptStyle string `yaml:"prompt_style"`
}

type Output struct {
	Dir  string `yaml:"dir"`
	File string `yaml:"file"`
}

func (o Output) Path() string {
	return filepath.Join(o.Dir, o.File)
}

type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

func Default() *Config {
	return &Config{
		Gemini: Gemini{
			Model:   consts.GeminiFlashModel,
			BaseURL: consts.GeminiBaseURL,
		},
		RetroDiffusion: RetroDiffusion{
			BaseURL: consts.RetroDiffusionBaseURL,
		},
		Sprite: Sprite{
			Width:       consts.DefaultSpriteWidth,
			Height:      consts.DefaultSpriteHeight,
			Prompt:      consts.DefaultSpritePrompt,
			NumImages:   consts.DefaultNumImages,
			PromptStyle: consts.DefaultPromptStyle,
		},
		Output: Output{
			Dir:  consts.DefaultOutputDir,
			File: consts.DefaultOutputFile,
		},
		Log: Log{
			Level:      "info",
			File:       "logs/genbridge.log",
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     14,
		},
	}
}

// Load reads a YAML config file and applies environment overrides. A
// missing file is not an error: the defaults already describe a full
// working setup, the tools only need a token from somewhere.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("RD_API_KEY"); v != "" {
		c.RetroDiffusion.Token = v
	}
}

func (c *Config) Verify() error {
	if c.Sprite.Width <= 0 || c.Sprite.Height <= 0 {
		return fmt.Errorf("sprite dimensions must be positive, got %dx%d", c.Sprite.Width, c.Sprite.Height)
	}
	if c.Sprite.NumImages <= 0 {
		return fmt.Errorf("sprite num_images must be positive, got %d", c.Sprite.NumImages)
	}
	if c.Output.Dir == "" || c.Output.File == "" {
		return fmt.Errorf("output dir and file must be set")
	}
	return nil
}
