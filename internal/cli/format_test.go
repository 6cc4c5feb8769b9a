package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999.4, "$999"},
		{310000, "$310,000"},
		{1234567.5, "$1,234,568"},
		{-12345.6, "-$12,346"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoneyDecimal(t *testing.T) {
	if got := FormatMoneyDecimal(decimal.NewFromInt(590000)); got != "$590,000" {
		t.Errorf("got %q", got)
	}
	if got := FormatMoneyDecimal(decimal.RequireFromString("-48574.56")); got != "-$48,575" {
		t.Errorf("got %q", got)
	}
}

func TestFormatMoneyShort(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{310000, "$310k"},
		{590000, "$590k"},
		{1234567, "$1235k"},
		{499, "$0k"},
		{-12000, "-$12k"},
	}
	for _, tt := range tests {
		if got := FormatMoneyShort(tt.in); got != tt.want {
			t.Errorf("FormatMoneyShort(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatGrowth(t *testing.T) {
	if got := FormatGrowth(0.17779); got != "0.18" {
		t.Errorf("got %q", got)
	}
	if got := FormatGrowth(-0.001); got != "0.00" {
		t.Errorf("negative zero: got %q", got)
	}
	if got := FormatGrowth(-0.25); got != "-0.25" {
		t.Errorf("got %q", got)
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(0.08); got != "8%" {
		t.Errorf("got %q", got)
	}
	if got := FormatRate(0.035); got != "3.5%" {
		t.Errorf("got %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Errorf("got %q", got)
	}
	if got := FormatNumber(-1000); got != "-1,000" {
		t.Errorf("got %q", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	got := RenderSparkline([]float64{10, 20, 30})
	if []rune(got)[0] != '▁' || []rune(got)[2] != '█' {
		t.Errorf("sparkline = %q", got)
	}
	if RenderSparkline(nil) != "" {
		t.Error("empty series should render empty")
	}
}

func TestDownsample(t *testing.T) {
	vals := make([]float64, 601)
	for i := range vals {
		vals[i] = float64(i)
	}
	got := Downsample(vals, 61)
	if len(got) != 61 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0] != 0 || got[60] != 600 {
		t.Errorf("endpoints = %v, %v", got[0], got[60])
	}
	if len(Downsample(vals[:10], 61)) != 10 {
		t.Error("short series should be unchanged")
	}
}

func TestRenderTable_WideCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Date", "Value"},
		Rows:    [][]string{{"Jan 2030", "$10,000"}, {"---"}, {"Dec 2079", "$1,234,568"}},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "$1,234,568") {
		t.Error("missing cell")
	}
}

func TestRenderTable_AlignAndClip(t *testing.T) {
	out := RenderTable(Table{
		Rows:     [][]string{{"growth", "8%", "A long description that gets clipped"}},
		Align:    []Align{AlignAuto, AlignAuto, AlignLeft},
		MaxWidth: 12,
	})
	if !strings.Contains(out, "A long desc…") {
		t.Errorf("description not clipped:\n%s", out)
	}
	if !strings.Contains(out, "│ growth │ 8% │") {
		t.Errorf("unexpected layout:\n%s", out)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Errorf("got %q", got)
	}
}
