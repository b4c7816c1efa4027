package main

import (
	"log"

	"github.com/minaorangina/ludo/server"
	"github.com/minaorangina/ludo/store"
)

func main() {
	config, err := server.LoadConfig()
	if err != nil {
		log.Fatalf("could not read config: %s", err.Error())
	}

	s := server.NewServer(store.NewInMemoryGameStore(), config)
	log.Printf("Listening on port %s...", config.Port)
	log.Fatal(s.ListenAndServe())
}
