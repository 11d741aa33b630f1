package domain

import "time"

// Plan é um nível de cobrança nomeado com preço e intervalo de renovação.
type Plan struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Interval string  `json:"interval"`
}

// Subscription é a visão normalizada de cobrança exibida ao tenant.
type Subscription struct {
	Status          string `json:"status"`
	Plan            Plan   `json:"plan"`
	NextBillingDate string `json:"next_billing_date"`
}

// SubscriptionRecord é a linha bruta de subscriptions com o join em plans.
// Plan pode ser nulo quando o join não encontra o plano armazenado.
type SubscriptionRecord struct {
	Status           string
	CurrentPeriodEnd time.Time
	Plan             *PlanRecord
}

// PlanRecord é a linha bruta da tabela plans.
type PlanRecord struct {
	ID       string
	Name     string
	Price    float64
	Interval string
}
