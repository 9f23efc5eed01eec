package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	trading "github.com/quantex-io/trading-engine"
	"github.com/quantex-io/trading-engine/api"
	"github.com/quantex-io/trading-engine/reliable"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	trading.SetLogger(logger)

	addr := envOr("LISTEN_ADDR", ":8080")
	kind := envOr("ENGINE_KIND", "queue")
	dataDir := envOr("DATA_DIR", "data")

	shardCount, err := strconv.Atoi(envOr("ENGINE_SHARDS", "4"))
	if err != nil || shardCount < 1 {
		logger.Error("invalid ENGINE_SHARDS", "value", envOr("ENGINE_SHARDS", "4"))
		os.Exit(1)
	}

	shards := make([]trading.TradingEngine, 0, shardCount)
	for i := 0; i < shardCount; i++ {
		shard, err := newEngine(kind, dataDir, i)
		if err != nil {
			logger.Error("failed to build engine shard", "kind", kind, "shard", i, "error", err)
			os.Exit(1)
		}
		shards = append(shards, shard)
	}

	server := api.NewServer(shards)

	logger.Info("server listening", "addr", addr, "engine", kind, "shards", shardCount)
	if err := server.Start(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newEngine(kind, dataDir string, shard int) (trading.TradingEngine, error) {
	switch kind {
	case "queue":
		return trading.NewQueueEngine(), nil
	case "fifo-linear":
		return trading.NewFifoEngine(trading.NewLinearScanBook()), nil
	case "fifo-linked":
		return trading.NewFifoEngine(trading.NewLinkedScanBook()), nil
	case "reliable":
		store, err := reliable.OpenQueueStore(filepath.Join(dataDir, fmt.Sprintf("shard-%d", shard)))
		if err != nil {
			return nil, err
		}
		return reliable.NewEngine(store), nil
	default:
		return nil, fmt.Errorf("unknown engine kind %q", kind)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
