package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/app"
	"github.com/Yngie-C/personal-branding-report-sub001/internal/config"
	"github.com/Yngie-C/personal-branding-report-sub001/internal/content"
)

func main() {
	cached := flag.Bool("cached", false, "read the stored analysis instead of recomputing")
	flag.Parse()

	sessionID := flag.Arg(0)
	if sessionID == "" {
		fmt.Fprintf(os.Stderr, "usage: %s [-cached] <session-id>\n", os.Args[0])
		os.Exit(2)
	}

	cfg := config.Load()

	if err := content.Verify(); err != nil {
		log.Fatalf("Static content tables are broken: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	// The report agents are owned by the embedding service; this tool
	// only drives the scoring chain, which never touches them.
	a := app.New(client.Database(cfg.MongoDatabase), rdb, nil)

	if *cached {
		stored, err := a.AnalysisService.GetBySessionID(ctx, sessionID)
		if err != nil {
			log.Fatalf("Failed to load analysis: %v", err)
		}
		if stored == nil {
			log.Fatalf("No analysis exists for session %s", sessionID)
		}
		printJSON(stored)
		return
	}

	fresh, err := a.AnalysisService.Analyze(ctx, sessionID)
	if err != nil {
		log.Fatalf("Failed to analyze session %s: %v", sessionID, err)
	}
	printJSON(fresh)
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(data))
}
