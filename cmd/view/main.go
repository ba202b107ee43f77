// Command view plays an animation written by the recording commands.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gridreel/internal/app"
	"gridreel/internal/codec"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file.{apng,png,gif}\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	anim, err := codec.ReadAnimationFile(path)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Title == app.NewConfig().Title {
		cfg.Title = "gridreel - " + filepath.Base(path)
	}
	log.Printf("%s: %d frames, loop %d", path, len(anim.Frames), anim.LoopCount)

	if err := app.Play(anim, cfg); err != nil {
		if errors.Is(err, app.ErrHeadless) {
			fmt.Fprintln(os.Stderr, "The viewer requires the ebiten build tag.")
			fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/view` or build with `-tags ebiten`.")
			os.Exit(2)
		}
		log.Fatal(err)
	}
}
