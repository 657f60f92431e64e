package utils

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultRepeatChar and DefaultRepeatCount draw the short separator line.
	DefaultRepeatChar  = "*"
	DefaultRepeatCount = 20

	// DefaultDateLayout renders dates like "March 5, 2024".
	DefaultDateLayout = "January 2, 2006"
)

// RepeatChar returns char concatenated count times. An empty char means "*"
// and a negative count means 20.
func RepeatChar(char string, count int) string {
	if char == "" {
		char = DefaultRepeatChar
	}
	if count < 0 {
		count = DefaultRepeatCount
	}
	return strings.Repeat(char, count)
}

// DefaultSeparator is RepeatChar with both defaults applied.
func DefaultSeparator() string {
	return RepeatChar(DefaultRepeatChar, DefaultRepeatCount)
}

// Symbol is the unit attached to a formatted number.
type Symbol string

const (
	SymbolNone    Symbol = ""
	SymbolDollar  Symbol = "$"
	SymbolPercent Symbol = "%"
)

// NumberFormat enumerates the options understood by FormatNumber.
type NumberFormat struct {
	Decimals int32
	Symbol   Symbol
}

// DefaultNumberFormat is two decimals with no symbol.
func DefaultNumberFormat() NumberFormat {
	return NumberFormat{Decimals: 2, Symbol: SymbolNone}
}

// Money is two decimals prefixed with "$".
func Money() NumberFormat {
	return NumberFormat{Decimals: 2, Symbol: SymbolDollar}
}

// Percent is two decimals suffixed with "%".
func Percent() NumberFormat {
	return NumberFormat{Decimals: 2, Symbol: SymbolPercent}
}

// FormatNumber rounds value half away from zero to opts.Decimals places and
// attaches the symbol: "$" goes in front, "%" goes after.
func FormatNumber(value decimal.Decimal, opts NumberFormat) string {
	places := opts.Decimals
	if places < 0 {
		places = 0
	}
	s := value.StringFixed(places)

	switch opts.Symbol {
	case SymbolDollar:
		return string(SymbolDollar) + s
	case SymbolPercent:
		return s + string(SymbolPercent)
	default:
		return s
	}
}

// Clock supplies the current time to a report run.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// FormatDate renders now with a Go time layout, DefaultDateLayout when empty.
func FormatDate(now time.Time, layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return now.Format(layout)
}
