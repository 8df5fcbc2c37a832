package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/promptforge/genbridge/config"
	"github.com/promptforge/genbridge/internal/modules/ai/image"
	"github.com/promptforge/genbridge/internal/modules/ai/image/retrodiffusion"
	"github.com/promptforge/genbridge/internal/modules/logs"
	"github.com/promptforge/genbridge/internal/modules/storage/local"
	"github.com/promptforge/genbridge/tools"
)

var configPath string

func init() {
	flag.StringVar(&configPath, "config", "config.yml", "config file path")
}

// pixelart requests one sprite from the RetroDiffusion inference API
// and writes the decoded PNG to the configured output path. Every
// failure path prints a diagnostic and exits 1.
func main() {
	flag.Parse()
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	logs.InitLogger(cfg.Log)
	if cfg.RetroDiffusion.Token == "" {
		fmt.Fprintf(os.Stderr, "missing RetroDiffusion token: set retrodiffusion.token in %s or the RD_API_KEY environment variable\n", configPath)
		os.Exit(1)
	}

	resp, err := retrodiffusion.CreateInference(context.Background(), cfg.RetroDiffusion, cfg.Sprite)
	if err != nil {
		fmt.Println("request error:", err)
		os.Exit(1)
	}
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("HTTP error: %d %s\n", resp.StatusCode, http.StatusText(resp.StatusCode))
		if resp.RespBody != "" {
			fmt.Println(resp.RespBody)
		}
		os.Exit(1)
	}
	if resp.Err != nil {
		if errors.Is(resp.Err, image.ErrNoImage) {
			fmt.Println("no base64 image found in response")
		} else {
			fmt.Println("unexpected error:", resp.Err)
		}
		os.Exit(1)
	}

	data, err := image.Decode(resp.Payload)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	outPath := cfg.Output.Path()
	if err := local.Save(data, outPath); err != nil {
		fmt.Println("write error:", err)
		os.Exit(1)
	}
	if w, h, err := tools.ImageBounds(data); err != nil {
		logs.Logger.Warn().Err(err).Str("path", outPath).Msg("saved payload does not decode as an image")
	} else {
		logs.Logger.Info().Int("width", w).Int("height", h).Str("path", outPath).Msg("image saved")
	}
	fmt.Println("image saved to", outPath)
}
