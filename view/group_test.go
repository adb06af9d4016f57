package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vegasq/tabview/record"
)

func TestGroupCount_Example(t *testing.T) {
	got := GroupCount(salesRecords(), "region")
	assert.Equal(t, []Category{{Name: "North", Count: 2}, {Name: "South", Count: 1}}, got)
}

func TestGroupCount_FirstAppearanceOrder(t *testing.T) {
	records := []record.Record{
		record.New(record.F("r", record.Text("West"))),
		record.New(record.F("r", record.Text("East"))),
		record.New(record.F("r", record.Text("West"))),
		record.New(record.F("r", record.Text("Alpha"))),
		record.New(record.F("other", record.Text("x"))),
	}

	got := GroupCount(records, "r")
	assert.Equal(t, []Category{
		{Name: "West", Count: 2},
		{Name: "East", Count: 1},
		{Name: "Alpha", Count: 1},
	}, got)
}

func TestGroupCount_ByBool(t *testing.T) {
	got := GroupCount(users(6), "isActive")
	assert.Equal(t, []Category{{Name: "true", Count: 4}, {Name: "false", Count: 2}}, got)
}

func TestGroupCount_CountsSumToInput(t *testing.T) {
	records := users(50)
	sum := 0
	for _, c := range GroupCount(records, "region") {
		sum += c.Count
	}
	assert.Equal(t, len(records), sum)
}

func TestGroupCount_Empty(t *testing.T) {
	assert.Empty(t, GroupCount(nil, "region"))
	assert.Empty(t, GroupCount(users(3), "unknown"))
}

func TestSeries(t *testing.T) {
	records := []record.Record{
		record.New(record.F("name", record.Text("a")), record.F("sales", record.Int(10))),
		record.New(record.F("name", record.Text("b")), record.F("sales", record.Text("n/a"))),
		record.New(record.F("name", record.Text("c")), record.F("sales", record.Float(2.5))),
		record.New(record.F("name", record.Text("d")), record.F("sales", record.Int(7))),
	}

	assert.Equal(t, []Point{{"a", 10}, {"c", 2.5}, {"d", 7}}, Series(records, "name", "sales", 0))
	assert.Equal(t, []Point{{"a", 10}}, Series(records, "name", "sales", 2))
	assert.Empty(t, Series(records, "name", "missing", 0))
}
