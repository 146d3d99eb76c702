package services

import (
	"math"
	"sort"

	"inventory/internal/repositories"
)

// DefaultLowStockThreshold is used when the caller supplies no threshold.
const DefaultLowStockThreshold = 5

// LowStockProduct is one qualifying product in the low-stock report.
type LowStockProduct struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Deficit  int     `json:"deficit"`
}

// StoreLowStock groups the qualifying products of one store.
type StoreLowStock struct {
	StoreID       string            `json:"storeId"`
	StoreName     string            `json:"storeName"`
	LowStockCount int               `json:"lowStockCount"`
	RestockCost   float64           `json:"restockCost"`
	Products      []LowStockProduct `json:"products"`
}

// LowStockReport is the full report returned by the reports endpoint.
type LowStockReport struct {
	Threshold             int             `json:"threshold"`
	TotalLowStockProducts int             `json:"totalLowStockProducts"`
	TotalRestockCost      float64         `json:"totalRestockCost"`
	Stores                []StoreLowStock `json:"stores"`
}

// ReportService computes inventory reports.
type ReportService struct {
	productRepo repositories.ProductRepository
}

// NewReportService creates a new ReportService.
func NewReportService(productRepo repositories.ProductRepository) *ReportService {
	return &ReportService{
		productRepo: productRepo,
	}
}

// LowStockReport groups all products with quantity at or below the
// threshold by store and computes the restock economics. Each store's
// restock cost is rounded once, after summing the raw per-product costs;
// the report total is the sum of those already-rounded per-store costs.
func (s *ReportService) LowStockReport(threshold int) (*LowStockReport, error) {
	products, err := s.productRepo.FindStockAtOrBelow(threshold)
	if err != nil {
		return nil, err
	}

	// One-pass grouping. The slice keeps the order stores were first seen
	// in, which follows the ascending-quantity product order.
	groups := make(map[string]*StoreLowStock)
	stores := make([]*StoreLowStock, 0)

	for _, p := range products {
		group, ok := groups[p.StoreID]
		if !ok {
			group = &StoreLowStock{
				StoreID:  p.StoreID,
				Products: []LowStockProduct{},
			}
			if p.Store != nil {
				group.StoreName = p.Store.Name
			}
			groups[p.StoreID] = group
			stores = append(stores, group)
		}

		deficit := threshold - p.Quantity
		group.LowStockCount++
		group.RestockCost += p.Price * float64(deficit)
		group.Products = append(group.Products, LowStockProduct{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Quantity: p.Quantity,
			Deficit:  deficit,
		})
	}

	totalCost := 0.0
	for _, group := range stores {
		group.RestockCost = roundCents(group.RestockCost)
		totalCost += group.RestockCost
	}

	sort.SliceStable(stores, func(i, j int) bool {
		return stores[i].LowStockCount > stores[j].LowStockCount
	})

	report := &LowStockReport{
		Threshold:             threshold,
		TotalLowStockProducts: len(products),
		TotalRestockCost:      roundCents(totalCost),
		Stores:                make([]StoreLowStock, 0, len(stores)),
	}
	for _, group := range stores {
		report.Stores = append(report.Stores, *group)
	}
	return report, nil
}

// roundCents rounds to 2 decimal places, half up.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
