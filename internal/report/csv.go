package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Leganyst/wellness-catalog/internal/model"
	"github.com/Leganyst/wellness-catalog/internal/utils"
)

type Kind string

const (
	KindServices Kind = "services"
	KindCategory Kind = "category"
	KindProvider Kind = "provider"
	KindSummary  Kind = "summary"
)

func ParseKind(s string) (Kind, bool) {
	switch k := Kind(strings.ToLower(s)); k {
	case KindServices, KindCategory, KindProvider, KindSummary:
		return k, true
	}
	return "", false
}

// Filename: имя файла отчёта на момент t (UTC).
func Filename(kind Kind, t time.Time) string {
	return fmt.Sprintf("%s-report-%s.csv", kind, t.UTC().Format("2006-01-02T15-04-05"))
}

// Write пишет отчёт нужного вида в CSV.
func Write(w io.Writer, kind Kind, services []model.Service, now time.Time) error {
	switch kind {
	case KindServices:
		return WriteServices(w, services)
	case KindCategory:
		return writeGroups(w, Build(services, now).Categories,
			[]string{"Category", "Service Count", "Average Price", "Total Value", "Services"}, true)
	case KindProvider:
		return writeGroups(w, Build(services, now).Providers,
			[]string{"Provider", "Service Count", "Total Value", "Average Price", "Services"}, false)
	case KindSummary:
		return WriteSummary(w, Build(services, now))
	}
	return fmt.Errorf("unknown report kind %q", kind)
}

func WriteServices(w io.Writer, services []model.Service) error {
	rows := [][]string{{"ID", "Service Name", "Category", "Provider", "Price", "Duration", "Description", "Status"}}
	for _, svc := range services {
		status := "Active"
		if !svc.Active {
			status = "Inactive"
		}
		rows = append(rows, []string{
			strconv.FormatInt(svc.ID, 10),
			svc.Name,
			labelOr(svc.Category, Uncategorized),
			labelOr(svc.Provider, UnknownProvider),
			strconv.FormatFloat(svc.Price, 'f', -1, 64),
			labelOr(svc.Duration, "N/A"),
			svc.Description,
			status,
		})
	}
	return writeAll(w, rows)
}

// writeGroups: порядок колонок у отчётов по категориям и провайдерам
// исторически разный.
func writeGroups(w io.Writer, groups []GroupStats, header []string, averageFirst bool) error {
	rows := [][]string{header}
	for _, g := range groups {
		avg := strconv.FormatFloat(g.AveragePrice, 'f', 2, 64)
		total := strconv.FormatFloat(g.TotalPrice, 'f', 2, 64)
		if !averageFirst {
			avg, total = total, avg
		}
		rows = append(rows, []string{g.Name, strconv.Itoa(g.Count), avg, total, strings.Join(g.Services, "; ")})
	}
	return writeAll(w, rows)
}

func WriteSummary(w io.Writer, s Summary) error {
	return writeAll(w, [][]string{
		{"Metric", "Value"},
		{"Total Services", strconv.Itoa(s.Prices.TotalServices)},
		{"Total Categories", strconv.Itoa(len(s.Categories))},
		{"Total Providers", strconv.Itoa(len(s.Providers))},
		{"Average Price", utils.FormatPrice(s.Prices.AveragePrice)},
		{"Minimum Price", utils.FormatPrice(s.Prices.MinPrice)},
		{"Maximum Price", utils.FormatPrice(s.Prices.MaxPrice)},
		{"Total Portfolio Value", utils.FormatPrice(s.Prices.TotalValue)},
		{"Report Generated", s.GeneratedAt.Format(time.DateTime)},
	})
}

func writeAll(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
