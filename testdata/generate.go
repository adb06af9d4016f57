//go:build ignore

// generate writes users.parquet and users.jsonl, the sample data set
// used when trying tabview by hand:
//
//	go run testdata/generate.go
package main

import (
	"encoding/json"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
)

type User struct {
	ID           int64   `parquet:"id" json:"id"`
	Name         string  `parquet:"name" json:"name"`
	Sales        float64 `parquet:"sales" json:"sales"`
	Region       string  `parquet:"region" json:"region"`
	Transactions int32   `parquet:"transactions" json:"transactions"`
	LastActive   int32   `parquet:"lastActive,date" json:"-"`
	IsActive     bool    `parquet:"isActive" json:"isActive"`
}

var regions = []string{"North", "South", "East", "West"}

func main() {
	rng := rand.New(rand.NewSource(42))
	epoch := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

	users := make([]User, 50)
	for i := range users {
		last := time.Date(2024, time.Month(rng.Intn(12)+1), rng.Intn(28)+1, 0, 0, 0, 0, time.UTC)
		users[i] = User{
			ID:           int64(i + 1),
			Name:         "User" + strconv.Itoa(i+1),
			Sales:        float64(rng.Intn(10000)),
			Region:       regions[i%len(regions)],
			Transactions: int32(rng.Intn(200)),
			LastActive:   int32(last.Sub(epoch).Hours() / 24),
			IsActive:     rng.Float64() > 0.5,
		}
	}

	if err := writeParquet("users.parquet", users); err != nil {
		log.Fatal(err)
	}
	if err := writeJSONLines("users.jsonl", users, epoch); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated users.parquet and users.jsonl with %d users", len(users))
}

func writeParquet(path string, users []User) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[User](file)
	if _, err := writer.Write(users); err != nil {
		return err
	}
	return writer.Close()
}

func writeJSONLines(path string, users []User, epoch time.Time) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	for _, u := range users {
		last := epoch.AddDate(0, 0, int(u.LastActive))
		// lastActive uses the US short date the web view displayed
		row := struct {
			User
			LastActive string `json:"lastActive"`
		}{u, last.Format("1/2/2006")}
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
