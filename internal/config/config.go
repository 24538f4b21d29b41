// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package config loads the settings of the pick command
// from the environment.
package config

import (
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"github.com/raykit/raykit/linear"
)

// Prefix of every environment variable, e.g. PICK_SCENE.
const Prefix = "PICK"

type Config struct {
	Scene          string      `envconfig:"SCENE" required:"true"`
	Width          int         `envconfig:"WIDTH" default:"640"`
	Height         int         `envconfig:"HEIGHT" default:"480"`
	FOV            float64     `envconfig:"FOV" default:"60"`
	Near           float64     `envconfig:"NEAR" default:"0.1"`
	Far            float64     `envconfig:"FAR" default:"1000"`
	Eye            linear.Vec3 `envconfig:"EYE" default:"0,-10,0"`
	Target         linear.Vec3 `envconfig:"TARGET" default:"0,0,0"`
	Up             linear.Vec3 `envconfig:"UP" default:"z=1"`
	UseSceneCamera bool        `envconfig:"USE_SCENE_CAMERA" default:"true"`
	Pixel          linear.Vec2 `envconfig:"PIXEL" default:"-1,-1"` // Negative means the image center.
	Shadow         bool        `envconfig:"SHADOW"`
	Light          linear.Vec3 `envconfig:"LIGHT"`
	LogLevel       slog.Level  `envconfig:"LOG_LEVEL" default:"INFO"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
