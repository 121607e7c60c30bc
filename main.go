package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lacycat/langcat/cli"
	"github.com/lacycat/langcat/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Error(
			"run failed",
			slog.Any("error", err),
		) // slog uses LogValue()
		os.Exit(1)
	}
}
