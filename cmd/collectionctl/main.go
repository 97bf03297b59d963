// Command collectionctl administers the vector store's collections.
// It currently supports listing collections and dropping one, the teardown
// counterpart to the collection bootstrap the server performs on startup.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/plshi/imagesearch/internal/logger"
	"github.com/plshi/imagesearch/internal/qdrant"
)

func main() {
	_ = godotenv.Load()

	var (
		list    = flag.Bool("list", false, "list collections and exit")
		drop    = flag.String("drop", "", "name of the collection to drop")
		confirm = flag.Bool("yes", false, "skip the confirmation prompt")
		timeout = flag.Duration("timeout", 30*time.Second, "operation timeout")
	)
	flag.Parse()

	if !*list && *drop == "" {
		flag.Usage()
		os.Exit(2)
	}

	log := logger.NewLoggerClient(logger.NewConfig())
	defer func() { _ = log.Zap.Sync() }()

	client, err := qdrant.NewClient(qdrant.NewConfig(), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect to vector store: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *list {
		names, err := client.ListCollections(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "list collections: %v\n", err)
			os.Exit(1)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if !*confirm {
		fmt.Printf("drop collection %q and all of its points? [y/N] ", *drop)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("aborted")
			return
		}
	}

	if err := client.DropCollection(ctx, *drop); err != nil {
		fmt.Fprintf(os.Stderr, "drop collection %q: %v\n", *drop, err)
		os.Exit(1)
	}
	fmt.Printf("collection %q dropped\n", *drop)
}
