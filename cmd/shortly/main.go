package main

import (
	"log"

	"github.com/avc-dev/shortly/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
