package utils

import "time"

// Rótulos curtos de mês em pt-BR, indexados por time.Month-1.
var shortMonthsBR = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// ShortMonthBR retorna o rótulo curto localizado do mês de uma data.
func ShortMonthBR(t time.Time) string {
	return shortMonthsBR[int(t.Month())-1]
}

// FormatDateBR formata uma data no padrão brasileiro dd/mm/aaaa.
func FormatDateBR(t time.Time) string {
	return t.Format("02/01/2006")
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
