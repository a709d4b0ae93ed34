package parser

import (
	"testing"

	"github.com/ukaji3/assignstat-go/pkg/assignstat/models"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		ref      string
		expected models.CellRange
		wantErr  bool
	}{
		{"A1:D10", models.CellRange{MinRow: 0, MinCol: 0, MaxRow: 9, MaxCol: 3}, false},
		{"$A$1:$D$10", models.CellRange{MinRow: 0, MinCol: 0, MaxRow: 9, MaxCol: 3}, false},
		{"Sheet1!B2:C3", models.CellRange{MinRow: 1, MinCol: 1, MaxRow: 2, MaxCol: 2}, false},
		{"'My Sheet'!B2:C3", models.CellRange{MinRow: 1, MinCol: 1, MaxRow: 2, MaxCol: 2}, false},
		{"D10:A1", models.CellRange{MinRow: 0, MinCol: 0, MaxRow: 9, MaxCol: 3}, false},
		{"A1", models.CellRange{}, false},
		{"AA5", models.CellRange{MinRow: 4, MinCol: 26, MaxRow: 4, MaxCol: 26}, false},
		{"", models.CellRange{}, true},
		{"A1:B2:C3", models.CellRange{}, true},
		{"nonsense", models.CellRange{}, true},
	}

	for _, tt := range tests {
		result, err := ParseRange(tt.ref)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRange(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && result != tt.expected {
			t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.ref, result, tt.expected)
		}
	}
}

func TestFormatRange(t *testing.T) {
	got, err := FormatRange(models.CellRange{MinRow: 0, MinCol: 0, MaxRow: 9, MaxCol: 27})
	if err != nil {
		t.Fatalf("FormatRange failed: %v", err)
	}
	if got != "A1:AB10" {
		t.Errorf("Expected A1:AB10, got %q", got)
	}

	if _, err := FormatRange(models.CellRange{MinRow: -2}); err == nil {
		t.Error("Expected error for negative bounds")
	}
}

func TestUnionRange(t *testing.T) {
	a := models.CellRange{MinRow: 2, MinCol: 1, MaxRow: 4, MaxCol: 3}
	b := models.CellRange{MinRow: 0, MinCol: 2, MaxRow: 3, MaxCol: 5}
	expected := models.CellRange{MinRow: 0, MinCol: 1, MaxRow: 4, MaxCol: 5}
	if got := unionRange(a, b); got != expected {
		t.Errorf("unionRange = %+v, expected %+v", got, expected)
	}
}

func TestFindDataBounds(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected models.CellRange
		found    bool
	}{
		{"nil", nil, models.CellRange{}, false},
		{"all blank", [][]string{{"", ""}, {}}, models.CellRange{}, false},
		{"single", [][]string{{}, {"", "x"}}, models.CellRange{MinRow: 1, MinCol: 1, MaxRow: 1, MaxCol: 1}, true},
		{
			"ragged",
			[][]string{{"", "a"}, {"b"}, {}, {"", "", "", "c"}},
			models.CellRange{MinRow: 0, MinCol: 0, MaxRow: 3, MaxCol: 3},
			true,
		},
	}

	for _, tt := range tests {
		got, found := findDataBounds(tt.rows)
		if found != tt.found || got != tt.expected {
			t.Errorf("%s: findDataBounds = %+v, %v; expected %+v, %v", tt.name, got, found, tt.expected, tt.found)
		}
	}
}

func TestColumnLabelAndIndex(t *testing.T) {
	tests := []struct {
		idx   int
		label string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{701, "ZZ"},
		{702, "AAA"},
	}

	for _, tt := range tests {
		if got := ColumnLabel(tt.idx); got != tt.label {
			t.Errorf("ColumnLabel(%d) = %q, expected %q", tt.idx, got, tt.label)
		}
		got, err := ColumnIndex(tt.label)
		if err != nil || got != tt.idx {
			t.Errorf("ColumnIndex(%q) = %d, %v; expected %d", tt.label, got, err, tt.idx)
		}
	}

	if got := ColumnLabel(-1); got != "" {
		t.Errorf("ColumnLabel(-1) = %q, expected empty", got)
	}
	if _, err := ColumnIndex("1A"); err == nil {
		t.Error("Expected error for invalid label")
	}
}

func TestIsDateFormat(t *testing.T) {
	custom := func(s string) *string { return &s }

	tests := []struct {
		name     string
		numFmt   int
		custom   *string
		expected bool
	}{
		{"general", 0, nil, false},
		{"decimal", 2, nil, false},
		{"builtin m/d/yyyy", 14, nil, true},
		{"builtin m/d/yy h:mm", 22, nil, true},
		{"builtin time only", 20, nil, false},
		{"iso", 0, custom("yyyy-mm-dd"), true},
		{"day month", 0, custom("dd/mm"), true},
		{"time only", 0, custom("hh:mm:ss"), false},
		{"quoted letters", 0, custom(`0.00 "days"`), false},
		{"escaped letter", 0, custom(`0\d`), false},
		{"locale prefix", 0, custom("[$-409]mmmm d, yyyy"), true},
		{"color only", 0, custom("[Red]0.00"), false},
		{"date in second section", 0, custom("0;yyyy"), false},
	}

	for _, tt := range tests {
		if got := isDateFormat(tt.numFmt, tt.custom); got != tt.expected {
			t.Errorf("%s: isDateFormat = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}
