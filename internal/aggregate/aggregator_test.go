package aggregate

import (
	"math"
	"strings"
	"testing"

	"varlens/domain/core"
	"varlens/domain/table"

	"github.com/rs/zerolog"
)

func newTable(headers []string, rows ...table.Row) *table.Table {
	return &table.Table{Headers: headers, Rows: rows}
}

func row(category, value string) table.Row {
	r := table.Row{}
	if category != "" {
		r["category"] = category
	}
	if value != "" {
		r["value"] = value
	}
	return r
}

func TestAggregate_GroupStatistics(t *testing.T) {
	tbl := newTable([]string{"category", "value"},
		row("A", "1.0"),
		row("B", "2.0"),
		row("A", "3.0"),
	)

	result, err := New(zerolog.Nop()).Aggregate(tbl)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("Expected 2 aggregated rows, got %d", len(result))
	}

	// Sorted by category name.
	a, b := result[0], result[1]
	if a.Category != "A" || b.Category != "B" {
		t.Fatalf("Expected categories [A B], got [%s %s]", a.Category, b.Category)
	}

	if a.Count != 2 || a.Mean != 2.0 {
		t.Errorf("Category A: want count=2 mean=2.0, got count=%d mean=%v", a.Count, a.Mean)
	}
	// Sample stddev of {1,3} with the n-1 denominator.
	if want := math.Sqrt(2); math.Abs(a.Std-want) > 1e-12 {
		t.Errorf("Category A: want std=%v, got %v", want, a.Std)
	}

	if b.Count != 1 || b.Mean != 2.0 {
		t.Errorf("Category B: want count=1 mean=2.0, got count=%d mean=%v", b.Count, b.Mean)
	}
	// A single observation has no sample standard deviation.
	if !math.IsNaN(b.Std) {
		t.Errorf("Category B: want NaN std for single sample, got %v", b.Std)
	}
}

func TestAggregate_MissingColumns(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    []string
	}{
		{"no category", []string{"value", "extra"}, []string{"category"}},
		{"no value", []string{"category"}, []string{"value"}},
		{"neither", []string{"other"}, []string{"category", "value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(zerolog.Nop()).Aggregate(newTable(tt.headers))
			if err == nil {
				t.Fatal("Expected MissingColumns error, got nil")
			}
			if !core.IsAggregationError(err) {
				t.Fatalf("Expected aggregation error, got %v", err)
			}
			for _, col := range tt.want {
				if !strings.Contains(err.Error(), col) {
					t.Errorf("Error should name missing column %q: %v", col, err)
				}
			}
		})
	}
}

func TestAggregate_DropsIncompleteRows(t *testing.T) {
	tbl := newTable([]string{"category", "value"},
		row("A", "1.0"),
		row("A", ""),   // missing value, dropped
		row("", "5.0"), // missing category, dropped
		row("A", "3.0"),
	)

	result, err := New(zerolog.Nop()).Aggregate(tbl)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(result) != 1 {
		t.Fatalf("Expected 1 category, got %d", len(result))
	}
	if result[0].Count != 2 {
		t.Errorf("Expected 2 surviving samples, got %d", result[0].Count)
	}
}

func TestAggregate_DropsRowsMissingAnyColumn(t *testing.T) {
	// Missing cells in non-required columns also disqualify the row.
	tbl := newTable([]string{"category", "value", "note"},
		table.Row{"category": "A", "value": "1.0", "note": "ok"},
		table.Row{"category": "A", "value": "2.0"},
	)

	result, err := New(zerolog.Nop()).Aggregate(tbl)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(result) != 1 || result[0].Count != 1 {
		t.Fatalf("Expected one category with one sample, got %+v", result)
	}
}

func TestAggregate_NonNumericValue(t *testing.T) {
	tbl := newTable([]string{"category", "value"},
		row("A", "1.0"),
		row("A", "not-a-number"),
	)

	_, err := New(zerolog.Nop()).Aggregate(tbl)
	if err == nil {
		t.Fatal("Expected computation error, got nil")
	}
	if !core.IsAggregationError(err) {
		t.Fatalf("Expected aggregation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "A") {
		t.Errorf("Error should name the category: %v", err)
	}
}

func TestAggregate_EmptyTable(t *testing.T) {
	result, err := New(zerolog.Nop()).Aggregate(newTable([]string{"category", "value"}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Expected empty aggregation, got %d rows", len(result))
	}
}

func TestAggregate_DeterministicOrder(t *testing.T) {
	tbl := newTable([]string{"category", "value"},
		row("zebra", "1.0"),
		row("apple", "2.0"),
		row("mango", "3.0"),
	)

	for i := 0; i < 10; i++ {
		result, err := New(zerolog.Nop()).Aggregate(tbl)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		got := []string{result[0].Category, result[1].Category, result[2].Category}
		want := []string{"apple", "mango", "zebra"}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("Run %d: order %v, want %v", i, got, want)
			}
		}
	}
}
