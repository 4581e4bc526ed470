package report

import (
	"math"
	"time"

	"github.com/Leganyst/wellness-catalog/internal/model"
)

const (
	Uncategorized   = "Uncategorized"
	UnknownProvider = "Unknown Provider"
)

// GroupStats: сводка по услугам одной категории или провайдера.
type GroupStats struct {
	Name         string   `json:"name"`
	Count        int      `json:"count"`
	TotalPrice   float64  `json:"totalPrice"`
	AveragePrice float64  `json:"averagePrice"`
	Services     []string `json:"services"`
}

type PriceAnalysis struct {
	TotalServices int     `json:"totalServices"`
	TotalValue    float64 `json:"totalValue"`
	AveragePrice  float64 `json:"averagePrice"`
	MinPrice      float64 `json:"minPrice"`
	MaxPrice      float64 `json:"maxPrice"`
}

type Summary struct {
	Categories  []GroupStats  `json:"categories"`
	Providers   []GroupStats  `json:"providers"`
	Prices      PriceAnalysis `json:"prices"`
	GeneratedAt time.Time     `json:"generatedAt"`
}

// Build группирует услуги по категориям и провайдерам (в порядке появления)
// и считает статистику цен. Для пустого списка цены нулевые.
func Build(services []model.Service, now time.Time) Summary {
	s := Summary{
		Categories:  group(services, func(svc model.Service) string { return labelOr(svc.Category, Uncategorized) }),
		Providers:   group(services, func(svc model.Service) string { return labelOr(svc.Provider, UnknownProvider) }),
		GeneratedAt: now,
	}

	s.Prices.TotalServices = len(services)
	if len(services) == 0 {
		return s
	}
	s.Prices.MinPrice = math.Inf(1)
	s.Prices.MaxPrice = math.Inf(-1)
	for _, svc := range services {
		s.Prices.TotalValue += svc.Price
		s.Prices.MinPrice = math.Min(s.Prices.MinPrice, svc.Price)
		s.Prices.MaxPrice = math.Max(s.Prices.MaxPrice, svc.Price)
	}
	s.Prices.AveragePrice = s.Prices.TotalValue / float64(len(services))
	return s
}

func group(services []model.Service, key func(model.Service) string) []GroupStats {
	out := []GroupStats{}
	index := make(map[string]int)
	for _, svc := range services {
		k := key(svc)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, GroupStats{Name: k, Services: []string{}})
		}
		g := &out[i]
		g.Count++
		g.TotalPrice += svc.Price
		g.Services = append(g.Services, svc.Name)
	}
	for i := range out {
		out[i].AveragePrice = out[i].TotalPrice / float64(out[i].Count)
	}
	return out
}

func labelOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
