package view

import "github.com/vegasq/tabview/record"

// Category is one group of a count aggregation
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"value"`
}

// GroupCount counts records per distinct value of field.
//
// Values are grouped by their text rendering and categories come out in
// order of first appearance, which keeps chart legends stable while the
// input order is stable. Records without the field are not counted.
func GroupCount(records []record.Record, field string) []Category {
	index := make(map[string]int)
	categories := make([]Category, 0)

	for _, r := range records {
		v, ok := r.Get(field)
		if !ok {
			continue
		}
		key := v.String()
		if i, seen := index[key]; seen {
			categories[i].Count++
			continue
		}
		index[key] = len(categories)
		categories = append(categories, Category{Name: key, Count: 1})
	}

	return categories
}

// Point is one labelled value of a chart series
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series extracts (label, value) points from the first limit records, or
// from all records when limit <= 0. Records whose value field is missing or
// not numeric are skipped but still count towards the limit, so the series
// always describes the same leading rows of the input.
func Series(records []record.Record, labelField, valueField string, limit int) []Point {
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}

	points := make([]Point, 0, len(records))
	for _, r := range records {
		v, ok := r.Get(valueField)
		if !ok {
			continue
		}
		n, ok := v.Number()
		if !ok {
			continue
		}
		label := ""
		if l, ok := r.Get(labelField); ok {
			label = l.String()
		}
		points = append(points, Point{Label: label, Value: n})
	}
	return points
}
