package main

import (
	"context"
	"log"

	"github.com/oceanmapping/go-csb/app/build"
)

func main() {

	ctx := context.Background()

	err := build.Run(ctx)

	if err != nil {
		log.Fatalf("Failed to build submission documents, %v", err)
	}
}
