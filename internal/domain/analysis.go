package domain

const (
	RiskLevelLow    = "low"
	RiskLevelMedium = "medium"
	RiskLevelHigh   = "high"
)

// AIAnalysisResponse é o resultado transiente da análise de métricas.
type AIAnalysisResponse struct {
	Insight        string `json:"insight"`
	Recommendation string `json:"recommendation"`
	RiskLevel      string `json:"riskLevel"`
}
