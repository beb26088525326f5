package common

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	SOLDecimals    = 9             // SOL has 9 decimals (lamports)
	LamportsPerSOL = 1_000_000_000 // 10^SOLDecimals
)

// LamportsToSOL converts lamports to SOL string without float precision loss
func LamportsToSOL(lamports uint64) string {
	return formatWithDecimals(lamports, SOLDecimals)
}

// SOLToLamports converts SOL string to lamports without float precision loss.
// Digits past the 9th decimal are truncated.
func SOLToLamports(sol string) (uint64, error) {
	return parseWithDecimals(sol, SOLDecimals)
}

// FormatSOL renders an amount the way it is shown to donors: shortest decimal
// form, no exponent ("0.1", "2.5", "5").
func FormatSOL(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(24981836, 9) = "0.024981836"
func formatWithDecimals(value uint64, decimals int) string {
	s := strconv.FormatUint(value, 10)

	// Pad with leading zeros if needed
	for len(s) <= decimals {
		s = "0" + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// parseWithDecimals converts decimal string to integer by removing decimal point
// Example: parseWithDecimals("0.024981836", 9) = 24981836
func parseWithDecimals(s string, decimals int) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty string")
	}

	whole, frac, hasPoint := strings.Cut(s, ".")
	if hasPoint && strings.Contains(frac, ".") {
		return 0, fmt.Errorf("invalid decimal format")
	}
	if whole == "" {
		whole = "0"
	}
	if strings.ContainsAny(whole+frac, "+-") {
		return 0, fmt.Errorf("invalid decimal format")
	}

	// Pad or truncate fractional part to exact decimals
	if len(frac) < decimals {
		frac += strings.Repeat("0", decimals-len(frac))
	} else if len(frac) > decimals {
		frac = frac[:decimals]
	}

	// ParseUint reports overflow, so huge inputs fail instead of wrapping
	return strconv.ParseUint(whole+frac, 10, 64)
}
