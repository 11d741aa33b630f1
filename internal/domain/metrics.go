package domain

import "time"

// MetricPoint representa um ponto da série histórica de receita,
// já com o rótulo de mês localizado para exibição.
type MetricPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// DashboardMetrics é o snapshot agregado exibido no dashboard.
// É sempre derivado sob demanda e nunca persistido.
type DashboardMetrics struct {
	TotalRevenue   float64       `json:"total_revenue"`
	RevenueGrowth  float64       `json:"revenue_growth"`
	AverageTicket  float64       `json:"average_ticket"`
	TicketGrowth   float64       `json:"ticket_growth"`
	NewCustomers   int           `json:"new_customers"`
	CustomerGrowth float64       `json:"customer_growth"`
	RevenueHistory []MetricPoint `json:"revenue_history"`
}

// RevenueRow é uma linha bruta da tabela revenue_metrics.
type RevenueRow struct {
	Date  time.Time
	Value float64
}
