package main

import (
	"context"
	"log"

	_ "gocloud.dev/runtimevar/constantvar"
	_ "gocloud.dev/runtimevar/filevar"

	"github.com/oceanmapping/go-csb/app/upload"
)

func main() {

	ctx := context.Background()

	err := upload.Run(ctx)

	if err != nil {
		log.Fatalf("Failed to upload submission documents, %v", err)
	}
}
