package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/bdwalton/gintendo/console"
	"github.com/bdwalton/gintendo/internal/monitor"
	"github.com/bdwalton/gintendo/mappers"
	"github.com/bdwalton/gintendo/nesrom"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	romFile  = flag.String("nes_rom", "", "Path to NES ROM to run.")
	saveFile = flag.String("save", "", "Path to a save-RAM file to load at start and write at shutdown. Defaults to <rom>.sav.")
	useMon   = flag.Bool("monitor", false, "Run the interactive debug monitor instead of the ebiten window.")
	mute     = flag.Bool("mute", false, "Disable APU audio output.")
)

func main() {
	flag.Parse()

	rom, err := nesrom.Load(*romFile)
	if err != nil {
		log.Fatalf("Invalid ROM: %v", err)
	}

	m, err := mappers.Get(rom)
	if err != nil {
		log.Fatalf("Couldn't Get() mapper: %v", err)
	}

	gintendo := console.New(m)
	gintendo.SetMute(*mute)

	save := *saveFile
	if save == "" {
		save = *romFile + ".sav"
	}
	if gintendo.HasSaveRAM() {
		if data, err := os.ReadFile(save); err == nil {
			gintendo.LoadSaveRAM(data)
		} else if !os.IsNotExist(err) {
			log.Printf("couldn't load save RAM from %q: %v", save, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	if *useMon {
		monitor.New(gintendo).Loop(ctx)
		cancel()
	} else {
		go func(ctx context.Context) {
			gintendo.Run(ctx)
		}(ctx)

		if err := ebiten.RunGame(gintendo); err != nil {
			log.Fatal(err)
		}

		cancel()
	}

	if gintendo.HasSaveRAM() {
		if err := os.WriteFile(save, gintendo.SaveRAM(), 0644); err != nil {
			log.Printf("couldn't write save RAM to %q: %v", save, err)
		}
	}

	os.Exit(0)
}
