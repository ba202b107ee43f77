//go:build !ebiten

package app

import (
	"image"

	"gridreel/internal/codec"
)

// Play reports ErrHeadless in the headless build.
func Play(*codec.Animation, *Config) error { return ErrHeadless }

// Show reports ErrHeadless in the headless build.
func Show(image.Image, *Config) error { return ErrHeadless }
