package view

import (
	"fmt"

	"github.com/vegasq/tabview/record"
)

var regions = []string{"North", "South", "East", "West"}

// users builds n records shaped like the sales table: id, name, sales,
// region, transactions, lastActive, isActive. Values are deterministic.
func users(n int) []record.Record {
	out := make([]record.Record, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, record.New(
			record.F("id", record.Int(int64(i))),
			record.F("name", record.Text(fmt.Sprintf("User%d", i))),
			record.F("sales", record.Int(int64((i*7919)%10000))),
			record.F("region", record.Text(regions[(i-1)%4])),
			record.F("transactions", record.Int(int64((i*37)%200))),
			record.F("lastActive", record.Date(fmt.Sprintf("%d/%d/2024", i%12+1, i%28+1))),
			record.F("isActive", record.Bool(i%3 != 0)),
		))
	}
	return out
}

func salesRecords() []record.Record {
	return []record.Record{
		record.New(
			record.F("id", record.Int(1)),
			record.F("region", record.Text("North")),
			record.F("sales", record.Int(6000)),
		),
		record.New(
			record.F("id", record.Int(2)),
			record.F("region", record.Text("South")),
			record.F("sales", record.Int(3000)),
		),
		record.New(
			record.F("id", record.Int(3)),
			record.F("region", record.Text("North")),
			record.F("sales", record.Int(9000)),
		),
	}
}

func field(records []record.Record, name string) []string {
	out := make([]string, len(records))
	for i, r := range records {
		v, _ := r.Get(name)
		out[i] = v.String()
	}
	return out
}
