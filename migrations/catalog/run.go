package main

import (
	"embed"
	"fmt"

	"github.com/ghuser/product-catalog/pkg/config"
	"github.com/ghuser/product-catalog/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	version, err := migrator.RunMigrations(cfg.DatabaseURL, MigrationsFS)
	if err != nil {
		panic(err)
	}
	fmt.Printf("schema at version %d\n", version)
}
