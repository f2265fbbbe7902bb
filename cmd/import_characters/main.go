package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"gacha-backend/config"
	"gacha-backend/database"
	"gacha-backend/gacha"
)

func main() {
	var (
		csvPath  = flag.String("csv", "", "Path to CSV file with masternumber,rarity,name[,type] rows")
		poolType = flag.Int("pool-type", -1, "Override the pool type of every imported row (-1 keeps the CSV value)")
	)
	flag.Parse()

	if strings.TrimSpace(*csvPath) == "" {
		log.Fatal("--csv is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	file, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("open csv file: %v", err)
	}
	defer file.Close()

	characters, err := gacha.ParseCharactersCSV(file)
	if err != nil {
		log.Fatalf("parse csv: %v", err)
	}
	if *poolType >= 0 {
		for i := range characters {
			characters[i].Type = *poolType
		}
	}

	ctx := context.Background()
	db, err := database.ConnectDB(ctx, cfg.DatabaseURL, database.PoolOptions{PoolSize: 1})
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()

	repo := gacha.NewPostgresRepository(db, cfg.PoolType)
	n, err := repo.UpsertCharacters(ctx, characters)
	if err != nil {
		log.Fatalf("import characters: %v", err)
	}

	fmt.Printf("Imported %d characters\n", n)

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		cache := gacha.NewCachedCatalog(rdb, repo, cfg.PoolType, cfg.CatalogCacheTTL)
		if err := cache.Invalidate(ctx); err != nil {
			log.Printf("warning: %v", err)
		} else {
			fmt.Println("Catalog cache invalidated")
		}
	}
}
