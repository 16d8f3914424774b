package main

import (
	"log"
	"os"
	"time"

	"github.com/minaorangina/cards/deck"
	uuid "github.com/satori/go.uuid"
)

func NewID() string {
	return uuid.NewV4().String()
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err.Error())
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	id := NewID()
	d, err := deal(id, cfg, deck.NewSource(seed))
	if err != nil {
		log.Fatalf("Could not deal %s: %s", id, err)
	}

	log.Printf("Dealt %d hands of %d (deal %s, seed %d)", cfg.Hands, cfg.HandSize, id, seed)
	d.render(os.Stdout)
}
