package main

import (
	"context"
	"fmt"
	"os"

	"github.com/example/task-hub/cli"
	"github.com/example/task-hub/config"
	"github.com/example/task-hub/storage"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	open := func() (*gorm.DB, error) {
		return storage.Open(cfg.Database)
	}

	if err := cli.Execute(context.Background(), open, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
