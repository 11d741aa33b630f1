package utils

import (
	"fmt"
	"math"
	"strings"
)

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatMoneyBR formata um valor monetário no padrão brasileiro,
// com ponto como separador de milhar e vírgula como decimal.
func FormatMoneyBR(v float64) string {
	formatted := fmt.Sprintf("%.2f", v)

	parts := strings.SplitN(formatted, ".", 2)
	intPart, decPart := parts[0], parts[1]

	negative := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	result := strings.Join(groups, ".") + "," + decPart
	if negative {
		result = "-" + result
	}

	return result
}
