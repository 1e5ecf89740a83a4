package main

import (
	"log"

	"github.com/milk9111/mascot/alert"
	"github.com/milk9111/mascot/assets"
	"github.com/milk9111/mascot/overlay"
	"github.com/milk9111/mascot/prefabs"
)

const alertTitle = "mascot"

func main() {
	o, err := newOverlay()
	if err != nil {
		if aerr := alert.Show(alertTitle, err.Error()); aerr != nil {
			log.Printf("%v (alert failed: %v)", err, aerr)
		}
		return
	}

	if err := overlay.Run(o); err != nil {
		log.Fatal(err)
	}
}

func newOverlay() (*overlay.Overlay, error) {
	spec, err := prefabs.LoadMascotSpec()
	if err != nil {
		return nil, err
	}
	dir, err := assets.Dir()
	if err != nil {
		return nil, err
	}
	path, err := assets.FirstSheet(dir)
	if err != nil {
		return nil, err
	}
	return overlay.New(spec, path)
}
