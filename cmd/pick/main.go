// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Command pick loads a scene and reports the object seen
// through one pixel of a camera.
//
// It is configured through PICK_* environment variables
// (see internal/config).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/raykit/raykit/camera"
	"github.com/raykit/raykit/geometry"
	"github.com/raykit/raykit/internal/config"
	"github.com/raykit/raykit/linear"
	"github.com/raykit/raykit/scene"
)

func main() {
	var level slog.LevelVar
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: &level})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	level.Set(cfg.LogLevel)

	if err := run(cfg, slog.Default()); err != nil {
		slog.Error("pick", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	s, err := scene.Load(cfg.Scene, cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	log.Info("scene loaded", "path", cfg.Scene, "objects", len(s.Objects), "bounds", s.Bounds())

	cam := s.Camera
	if cam == nil || !cfg.UseSceneCamera {
		if cam, err = newCamera(cfg); err != nil {
			return err
		}
		log.Debug("camera from config", "eye", cfg.Eye, "target", cfg.Target, "up", cfg.Up)
	} else {
		log.Debug("camera from scene", "eye", cam.Eye(), "fov", cam.FOV())
	}

	x, y := cfg.Pixel.X(), cfg.Pixel.Y()
	if x < 0 || y < 0 {
		x, y = float64(cam.Width())/2, float64(cam.Height())/2
	} else {
		x, y = x+0.5, y+0.5
	}
	r := cam.Ray(x, y)
	log.Debug("ray", "x", x, "y", y, "start", r.Start, "direction", r.Direction)

	obj, rec, ok := s.Pick(r)
	if !ok {
		log.Info("no hit", "x", x, "y", y)
		return nil
	}
	log.Info("hit", "object", obj.Name, "point", rec.Point, "normal", rec.Normal, "t", rec.T)

	if cfg.Shadow {
		// Start just off the picked face.
		p := linear.AddV3(rec.Point, linear.ScaleV3(1e-9, rec.Normal))
		sr := geometry.NewRay(p, linear.SubV3(cfg.Light, p))
		log.Info("shadow", "light", cfg.Light, "occluded", s.Occluded(sr, 1))
	}
	return nil
}

func newCamera(cfg *config.Config) (*camera.Perspective, error) {
	cam, err := camera.New(cfg.Width, cfg.Height, cfg.FOV, camera.WithClip(cfg.Near, cfg.Far))
	if err != nil {
		return nil, err
	}
	if err := cam.SetView(cfg.Eye, cfg.Target, cfg.Up); err != nil {
		return nil, err
	}
	return cam, nil
}
