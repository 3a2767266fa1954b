package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalProducts int             `json:"total_products"`
	LowStock      int             `json:"low_stock"`
	OutOfStock    int             `json:"out_of_stock"`
	TotalValue    decimal.Decimal `json:"total_value"` // Σ quantity × selling_price, exacto

	// Desglose por categoría en orden de primera aparición (el chart lo consume tal cual).
	CategoryBreakdown []CategoryStatDTO `json:"category_breakdown"`

	// Los 5 productos más recientes por fecha de creación.
	RecentProducts []ProductResponse `json:"recent_products"`
}

// CategoryStatDTO un grupo del desglose por categoría.
type CategoryStatDTO struct {
	Name  string          `json:"name"`
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
}
