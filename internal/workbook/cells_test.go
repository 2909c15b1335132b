package workbook

import (
	"testing"

	"github.com/sapops/dailyaudit/internal/models"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want models.Response
	}{
		{"yes in D", []string{"1", "SM51", "servers", "Y"}, models.ResponseYes},
		{"yes in E", []string{"1", "SM51", "servers", "", "Y"}, models.ResponseYes},
		{"no in D", []string{"1", "SM51", "servers", "N"}, models.ResponseNo},
		{"no wins over yes", []string{"1", "SM51", "servers", "Y", "N"}, models.ResponseNo},
		{"lowercase", []string{"1", "SM51", "servers", "n"}, models.ResponseNo},
		{"whitespace padded", []string{"1", "SM51", "servers", " Y "}, models.ResponseYes},
		{"blank", []string{"1", "SM51", "servers"}, models.ResponseBlank},
		{"numeric not verdict", []string{"1", "ST22", "dumps today", "12"}, models.ResponseBlank},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := parseResponse(tt.row); got != tt.want {
				t.Fatalf("parseResponse(%v) = %q, want %q", tt.row, got, tt.want)
			}
		})
	}
}

func TestParseJustification(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want string
	}{
		{"plain text", []string{"", "", "", "", "", "", "job BI_LOAD rescheduled"}, "job BI_LOAD rescheduled"},
		{"nbsp only", []string{"", "", "", "", "", "", "\u00a0"}, ""},
		{"nbsp embedded", []string{"", "", "", "", "", "", "\u00a0known issue\u00a0"}, "known issue"},
		{"whitespace only", []string{"", "", "", "", "", "", "   "}, ""},
		{"column missing", []string{"", "", ""}, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := parseJustification(tt.row); got != tt.want {
				t.Fatalf("parseJustification(%v) = %q, want %q", tt.row, got, tt.want)
			}
		})
	}
}

func TestParseMetric(t *testing.T) {
	fl := func(v float64) *float64 { return &v }

	tests := []struct {
		name string
		row  []string
		want *float64
	}{
		{"integer in D", []string{"", "", "", "12"}, fl(12)},
		{"decimal point", []string{"", "", "", "431.7"}, fl(431.7)},
		{"decimal comma", []string{"", "", "", "431,7"}, fl(431.7)},
		{"thousands space", []string{"", "", "", "1 250"}, fl(1250)},
		{"skips verdict to F", []string{"", "", "", "Y", "", "16"}, fl(16)},
		{"no numeric", []string{"", "", "", "Y", "", "ok"}, nil},
		{"empty row", nil, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := parseMetric(tt.row)
			switch {
			case got == nil && tt.want == nil:
			case got == nil || tt.want == nil:
				t.Fatalf("parseMetric(%v) = %v, want %v", tt.row, got, tt.want)
			case *got != *tt.want:
				t.Fatalf("parseMetric(%v) = %v, want %v", tt.row, *got, *tt.want)
			}
		})
	}
}

func TestIsEmptyRow(t *testing.T) {
	if !isEmptyRow([]string{"", "  ", ""}) {
		t.Fatal("whitespace-only row should be empty")
	}
	if isEmptyRow([]string{"", "x"}) {
		t.Fatal("row with content should not be empty")
	}
}
