package utils

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type priceLocale struct {
	tag    language.Tag
	symbol string
	// suffix: символ после суммы через неразрывный пробел.
	suffix bool
}

var priceLocales = map[currency.Unit]priceLocale{
	currency.USD: {tag: language.AmericanEnglish, symbol: "$"},
	currency.EUR: {tag: language.German, symbol: "€", suffix: true},
	currency.GBP: {tag: language.BritishEnglish, symbol: "£"},
}

// RoundPrice округляет до центов, половину от нуля.
func RoundPrice(amount float64) float64 {
	return math.Round(amount*100) / 100
}

const nbsp = "\u00a0"

// FormatPrice форматирует сумму в валюте code, по умолчанию в долларах
// США. Лишние аргументы игнорируются.
func FormatPrice(amount float64, code ...string) string {
	if len(code) > 0 {
		return FormatPriceIn(amount, code[0])
	}
	return FormatPriceIn(amount, "USD")
}

// FormatPriceIn форматирует сумму с двумя знаками в локали валюты code:
// USD как en-US, EUR как de-DE, GBP как en-GB. Прочие валидные ISO-коды
// идут с группировкой en-US и символом валюты из CLDR (CAD: "CA$"),
// невалидные считаются USD.
func FormatPriceIn(amount float64, code string) string {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		unit = currency.USD
	}

	loc, known := priceLocales[unit]
	if !known {
		en := message.NewPrinter(language.AmericanEnglish)
		loc = priceLocale{tag: language.AmericanEnglish, symbol: en.Sprint(currency.Symbol(unit))}
	}

	rounded := RoundPrice(amount)
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}

	p := message.NewPrinter(loc.tag)
	digits := p.Sprintf("%v", number.Decimal(rounded, number.Scale(2)))

	if loc.suffix {
		return sign + digits + nbsp + loc.symbol
	}
	return sign + loc.symbol + digits
}

// FormatDuration переводит минуты в текст. Меньше часа всегда "minutes",
// даже для 1.
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}

	hours := minutes / 60
	rest := minutes % 60
	if rest == 0 {
		if hours > 1 {
			return fmt.Sprintf("%d hours", hours)
		}
		return fmt.Sprintf("%d hour", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, rest)
}
