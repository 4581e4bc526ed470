package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leganyst/wellness-catalog/internal/model"
	"github.com/Leganyst/wellness-catalog/internal/testutil"
)

var generatedAt = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

func sampleServices() []model.Service {
	return []model.Service{
		{ID: 1, Name: "Reiki", Description: `Hands-on "energy" work`, Price: 75, Category: testutil.Ptr("Energy Healing"), Provider: testutil.Ptr("Dr. Sarah Chen"), Duration: testutil.Ptr("60 minutes"), Active: true},
		{ID: 2, Name: "Sound Bath", Description: "Bowls, gongs", Price: 45, Category: testutil.Ptr("Energy Healing"), Active: true},
		{ID: 3, Name: "Tarot", Description: "Reading", Price: 30.5, Provider: testutil.Ptr("Dr. Sarah Chen"), Active: false},
	}
}

func TestBuild(t *testing.T) {
	s := Build(sampleServices(), generatedAt)

	require.Len(t, s.Categories, 2)
	assert.Equal(t, GroupStats{Name: "Energy Healing", Count: 2, TotalPrice: 120, AveragePrice: 60, Services: []string{"Reiki", "Sound Bath"}}, s.Categories[0])
	assert.Equal(t, Uncategorized, s.Categories[1].Name)

	require.Len(t, s.Providers, 2)
	assert.Equal(t, "Dr. Sarah Chen", s.Providers[0].Name)
	assert.Equal(t, 2, s.Providers[0].Count)
	assert.Equal(t, UnknownProvider, s.Providers[1].Name)

	assert.Equal(t, 3, s.Prices.TotalServices)
	assert.InDelta(t, 150.5, s.Prices.TotalValue, 1e-9)
	assert.InDelta(t, 50.1667, s.Prices.AveragePrice, 1e-4)
	assert.Equal(t, 30.5, s.Prices.MinPrice)
	assert.Equal(t, 75.0, s.Prices.MaxPrice)
}

func TestBuild_Empty(t *testing.T) {
	s := Build(nil, generatedAt)
	assert.Empty(t, s.Categories)
	assert.NotNil(t, s.Categories)
	assert.Equal(t, PriceAnalysis{}, s.Prices)
}

func readCSV(t *testing.T, kind Kind) [][]string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, kind, sampleServices(), generatedAt))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWrite_Services(t *testing.T) {
	rows := readCSV(t, KindServices)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"ID", "Service Name", "Category", "Provider", "Price", "Duration", "Description", "Status"}, rows[0])
	assert.Equal(t, []string{"1", "Reiki", "Energy Healing", "Dr. Sarah Chen", "75", "60 minutes", `Hands-on "energy" work`, "Active"}, rows[1])
	assert.Equal(t, []string{"2", "Sound Bath", "Energy Healing", UnknownProvider, "45", "N/A", "Bowls, gongs", "Active"}, rows[2])
	assert.Equal(t, "Inactive", rows[3][7])
}

func TestWrite_GroupColumnOrder(t *testing.T) {
	cat := readCSV(t, KindCategory)
	assert.Equal(t, []string{"Category", "Service Count", "Average Price", "Total Value", "Services"}, cat[0])
	assert.Equal(t, []string{"Energy Healing", "2", "60.00", "120.00", "Reiki; Sound Bath"}, cat[1])

	prov := readCSV(t, KindProvider)
	assert.Equal(t, []string{"Provider", "Service Count", "Total Value", "Average Price", "Services"}, prov[0])
	assert.Equal(t, []string{"Dr. Sarah Chen", "2", "105.50", "52.75", "Reiki; Tarot"}, prov[1])
}

func TestWrite_Summary(t *testing.T) {
	rows := readCSV(t, KindSummary)
	got := map[string]string{}
	for _, r := range rows[1:] {
		got[r[0]] = r[1]
	}
	assert.Equal(t, "3", got["Total Services"])
	assert.Equal(t, "2", got["Total Categories"])
	assert.Equal(t, "$50.17", got["Average Price"])
	assert.Equal(t, "$30.50", got["Minimum Price"])
	assert.Equal(t, "$75.00", got["Maximum Price"])
	assert.Equal(t, "$150.50", got["Total Portfolio Value"])
	assert.Equal(t, "2024-03-09 14:05:07", got["Report Generated"])
}

func TestParseKindAndFilename(t *testing.T) {
	k, ok := ParseKind("Summary")
	require.True(t, ok)
	assert.Equal(t, KindSummary, k)

	_, ok = ParseKind("revenue")
	assert.False(t, ok)

	assert.Equal(t, "category-report-2024-03-09T14-05-07.csv", Filename(KindCategory, generatedAt))
}
