package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalBeacons   = 6000 // perf_afterOL documents
	totalPageViews = 3000 // pv_log documents
	fmpGap         = 400
	collectionPfx  = "xes_fed_bi_"
)

var (
	hrefs = []string{
		"https://www.example.com/",
		"https://www.example.com/?from=mail",
		"https://www.example.com/courses#top",
		"https://www.example.com/courses?page=2",
		"https://www.example.com/about",
	}
	userAgents = []*string{
		strPtr("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		strPtr("Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"),
		nil, // no ua field, counted as mobile
	}
	// distinct (normalized url, mode) pairs the page views above produce
	expectedDistinctTasks = int64(3 * 2)
)

// ### End - fixed configs

type report struct {
	Records        int64                                 `json:"records"`
	SkippedLookups int64                                 `json:"skippedLookups"`
	Histogram      map[string]map[string]metricHistogram `json:"histogram"`
}

type metricHistogram struct {
	Buckets map[string]int64 `json:"buckets"`
}

type populateResult struct {
	Scanned int64 `json:"scanned"`
	Created int64 `json:"created"`
	Matched int64 `json:"matched"`
}

type queueStatus struct {
	Unfinished int64 `json:"unfinished"`
}

// main runs the e2e scenario: 001_fmp_histogram_and_task_queue
//
// It seeds a MongoDB database with deterministic beacons and page views, then
// drives the perfstats binary against it.
//
// What it tests:
//   - fmp histogram: every beacon is read once, split by device mode and bucketed by ceiling
//   - beacons without an fmp value are skipped, not counted
//   - task population queues one task per (normalized url, mode)
//   - running population a second time queues nothing new
//
// Expected results:
//   - the fmp report counts totalBeacons records and matches the histogram computed here
//   - the first population creates expectedDistinctTasks tasks, the second creates none
//   - tasks status reports expectedDistinctTasks unfinished tasks
func main() {
	// these configs can be changed to run the scenario
	mongoURI := getEnv("E2E_MONGO_URI", "mongodb://127.0.0.1:27017")
	database := getEnv("E2E_MONGO_DATABASE", "perfstats_e2e")
	binary := getEnv("E2E_PERFSTATS_BIN", "./bin/perfstats")
	insertBatch := getEnvInt("E2E_INSERT_BATCH", 500)

	fmt.Println("Starting e2e scenario: 001_fmp_histogram_and_task_queue")
	fmt.Printf("MONGO_URI: %s\n", mongoURI)
	fmt.Printf("MONGO_DATABASE: %s\n", database)
	fmt.Printf("PERFSTATS_BIN: %s\n", binary)
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(mongoURI))
	if err != nil {
		fail("failed to connect to mongo: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(database)
	if err := db.Drop(ctx); err != nil {
		fail("failed to reset database: %v", err)
	}

	// Seed beacons
	beacons, expected := generateBeacons()
	if err := insertAll(ctx, db.Collection(collectionPfx+"perf_afterOL"), beacons, insertBatch); err != nil {
		fail("failed to seed beacons: %v", err)
	}
	fmt.Printf("Seeded %d beacons\n", len(beacons))

	// Seed page views
	if err := insertAll(ctx, db.Collection(collectionPfx+"pv_log"), generatePageViews(), insertBatch); err != nil {
		fail("failed to seed page views: %v", err)
	}
	fmt.Printf("Seeded %d page views\n", totalPageViews)
	fmt.Println()

	env := append(os.Environ(),
		"PERFSTATS_MONGO_URI="+mongoURI,
		"PERFSTATS_MONGO_DATABASE="+database,
		"PERFSTATS_REPORT_FORMAT=json",
		"PERFSTATS_LOG_LEVEL=warn",
	)

	// fmp histogram
	var got report
	runJSON(ctx, binary, env, &got, "--config", "", "fmp")
	if got.Records != totalBeacons {
		fail("fmp records = %d, want %d", got.Records, totalBeacons)
	}
	for mode, buckets := range expected {
		for bucket, count := range buckets {
			key := strconv.FormatInt(bucket, 10)
			if have := got.Histogram[mode]["fmp"].Buckets[key]; have != count {
				fail("fmp %s bucket %s = %d, want %d", mode, key, have, count)
			}
		}
	}
	fmt.Printf("fmp histogram matches (%d records, %d skipped lookups)\n", got.Records, got.SkippedLookups)

	// task population, twice
	var first, second populateResult
	runJSON(ctx, binary, env, &first, "--config", "", "tasks", "populate")
	runJSON(ctx, binary, env, &second, "--config", "", "tasks", "populate")
	if first.Created != expectedDistinctTasks {
		fail("first population created %d, want %d", first.Created, expectedDistinctTasks)
	}
	if second.Created != 0 || second.Matched != totalPageViews {
		fail("second population created %d matched %d, want 0 and %d", second.Created, second.Matched, totalPageViews)
	}

	var status queueStatus
	runJSON(ctx, binary, env, &status, "--config", "", "tasks", "status")
	if status.Unfinished != expectedDistinctTasks {
		fail("unfinished tasks = %d, want %d", status.Unfinished, expectedDistinctTasks)
	}
	fmt.Printf("task queue holds %d distinct tasks after two populations\n", status.Unfinished)

	fmt.Println("Scenario completed successfully")
}

func strPtr(s string) *string { return &s }

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}

// generateBeacons builds the perf_afterOL documents and the histogram they should produce.
// Every 7th beacon has no fmp field.
func generateBeacons() ([]any, map[string]map[int64]int64) {
	docs := make([]any, 0, totalBeacons)
	expected := map[string]map[int64]int64{"mobile": {}, "desktop": {}}

	for i := 0; i < totalBeacons; i++ {
		ua := userAgents[i%len(userAgents)]
		doc := bson.M{}
		if ua != nil {
			doc["ua"] = *ua
		}
		mode := "mobile"
		if i%len(userAgents) == 0 {
			mode = "desktop"
		}

		if i%7 != 0 {
			fmp := float64((i*131)%9000) + float64(i%3)*0.5
			doc["fmp"] = fmp
			bucket := int64(math.Ceil(fmp/fmpGap)) * fmpGap
			expected[mode][bucket]++
		}
		docs = append(docs, doc)
	}
	return docs, expected
}

func generatePageViews() []any {
	docs := make([]any, 0, totalPageViews)
	for i := 0; i < totalPageViews; i++ {
		doc := bson.M{"data": bson.M{"currenthref": hrefs[i%len(hrefs)]}}
		// the mode flips every len(hrefs) views, so each href is seen as desktop and mobile
		if ua := userAgents[(i/len(hrefs))%2]; ua != nil {
			doc["ua"] = *ua
		}
		docs = append(docs, doc)
	}
	return docs
}

func insertAll(ctx context.Context, coll *mongo.Collection, docs []any, batch int) error {
	for start := 0; start < len(docs); start += batch {
		end := min(start+batch, len(docs))
		if _, err := coll.InsertMany(ctx, docs[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func runJSON(ctx context.Context, binary string, env []string, out any, args ...string) {
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Env = env
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		fail("perfstats %v failed: %v\n%s", args, err, stderr.String())
	}
	if err := json.Unmarshal(stdout.Bytes(), out); err != nil {
		fail("perfstats %v printed invalid json: %v\n%s", args, err, stdout.String())
	}
}
