//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"gridreel/internal/codec"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Player adapts a decoded animation to the ebiten.Game interface.
type Player struct {
	frames   []*ebiten.Image
	size     image.Point
	playback *Playback
	scale    int
}

// NewPlayer uploads the animation frames to the GPU.
func NewPlayer(anim *codec.Animation, cfg *Config) (*Player, error) {
	if anim == nil || len(anim.Frames) == 0 {
		return nil, codec.ErrNoFrames
	}
	p := &Player{
		playback: NewPlayback(anim.Delays, anim.LoopCount, cfg.FrameDuration),
		scale:    cfg.scale(),
		size:     anim.Frames[0].Bounds().Size(),
	}
	for _, f := range anim.Frames {
		p.frames = append(p.frames, ebiten.NewImageFromImage(f))
	}
	return p, nil
}

// Update handles keyboard input and advances playback.
func (p *Player) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.playback.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		p.playback.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.playback.Restart()
	}
	p.playback.Advance(time.Now())
	return nil
}

// Draw renders the current frame.
func (p *Player) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.scale), float64(p.scale))
	screen.DrawImage(p.frames[p.playback.Index()], op)
	if p.playback.Paused() {
		status := fmt.Sprintf("paused %d/%d", p.playback.Index()+1, len(p.frames))
		text.Draw(screen, status, basicfont.Face7x13, 4, basicfont.Face7x13.Ascent+4, color.RGBA{R: 0xff, A: 0xff})
	}
}

// Layout returns the logical screen size.
func (p *Player) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.size.X * p.scale, p.size.Y * p.scale
}

// Play opens a window playing anim until it is closed.
func Play(anim *codec.Animation, cfg *Config) error {
	p, err := NewPlayer(anim, cfg)
	if err != nil {
		return err
	}
	return run(p, p.size, cfg)
}

// Show opens a window displaying a single image.
func Show(img image.Image, cfg *Config) error {
	return Play(&codec.Animation{Frames: []image.Image{img}, Delays: []time.Duration{0}}, cfg)
}

func run(game ebiten.Game, size image.Point, cfg *Config) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.X*cfg.scale(), size.Y*cfg.scale())
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten.RunGame failed: %w", err)
	}
	return nil
}
