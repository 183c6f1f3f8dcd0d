package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (FPS overlay, prefab hot reload)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	windowed := flag.Bool("windowed", false, "run in a window instead of borderless fullscreen")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowTitle("Pong!")
	if *windowed {
		w, h := ebiten.Monitor().Size()
		ebiten.SetWindowSize(w, h)
	} else {
		ebiten.SetFullscreen(true)
	}

	game, err := NewGame(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
