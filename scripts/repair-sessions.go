package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/smkun/MarvelPowers/internal/redis"
	"github.com/smkun/MarvelPowers/internal/repositories/session"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	prefix := os.Getenv("SESSION_PREFIX")

	client, err := redis.NewClientFromURL(redisURL)
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted sessions...")

	report, err := session.Repair(ctx, &session.RepairInput{Client: client, KeyPrefix: prefix})
	if err != nil {
		log.Fatal("Scan failed:", err)
	}

	fmt.Printf("\nChecked %d sessions\n", report.Checked)
	printNames("Corrupted sessions (will be deleted)", report.Corrupted)
	printNames("Indexed names without a session (will be unindexed)", report.Dangling)
	printNames("Sessions missing from the index (will be indexed)", report.Unindexed)

	if len(report.Corrupted)+len(report.Dangling)+len(report.Unindexed) == 0 {
		fmt.Println("No problems found!")
		return
	}

	fmt.Print("\nApply these changes? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	if _, err := session.Repair(ctx, &session.RepairInput{Client: client, KeyPrefix: prefix, Fix: true}); err != nil {
		log.Fatal("Repair failed:", err)
	}
	fmt.Println("\nRepair complete!")
}

func printNames(title string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, n := range names {
		fmt.Printf("  - %s\n", n)
	}
}
