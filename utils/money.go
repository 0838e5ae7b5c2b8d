package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var ErrBadAmount = errors.New("invalid amount")

// currency prefixes the mobile clients send
var currencyPrefixes = map[string]string{
	"K":   "ZMW",
	"ZMW": "ZMW",
	"$":   "USD",
	"USD": "USD",
	"R":   "ZAR",
}

// ParseAmount turns a currency-prefixed string like "K500" or
// "ZMW 1,250.50" into cents plus an ISO currency code. A bare number
// defaults to ZMW.
func ParseAmount(s string) (cents int64, currency string, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, "", ErrBadAmount
	}

	i := 0
	for i < len(s) && !unicode.IsDigit(rune(s[i])) {
		i++
	}
	prefix := strings.TrimSpace(s[:i])
	num := strings.ReplaceAll(strings.TrimSpace(s[i:]), ",", "")
	if num == "" {
		return 0, "", ErrBadAmount
	}

	value, err := strconv.ParseFloat(num, 64)
	if err != nil || value < 0 {
		return 0, "", ErrBadAmount
	}

	currency = "ZMW"
	if prefix != "" {
		code, ok := currencyPrefixes[strings.ToUpper(prefix)]
		if !ok {
			return 0, "", ErrBadAmount
		}
		currency = code
	}

	return int64(math.Round(value * 100)), currency, nil
}
