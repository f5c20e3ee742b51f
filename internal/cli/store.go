package cli

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/graphreduce/graphreduce/pkg/config"
	"github.com/graphreduce/graphreduce/pkg/store"
)

// newStore builds a Store from cfg's backend selection ("file" or
// "mongo"). dirOverride, when non-empty, takes precedence over cfg.Dir
// for the file backend (the --run-dir flag).
func newStore(cfg config.StoreConfig, dirOverride string) (store.Store, error) {
	switch cfg.Backend {
	case "mongo":
		client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.URI))
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		coll := client.Database(cfg.DBName).Collection("runs")
		return store.NewMongoStore(coll), nil
	default:
		dir := cfg.Dir
		if dirOverride != "" {
			dir = dirOverride
		}
		return store.NewFileStore(dir)
	}
}
