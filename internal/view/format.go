package view

import (
	"math"

	"github.com/dustin/go-humanize"
)

// currency is the storefront's unit of account.
const currency = "synapses"

// FormatNumber rounds v and groups thousands with spaces, e.g. 12500 -> "12 500".
func FormatNumber(v float64) string {
	return humanize.FormatInteger("# ###.", int(math.Round(v)))
}

// FormatPrice renders a price label; nil means the item is priceless.
func FormatPrice(price *float64) string {
	if price == nil {
		return "Priceless"
	}
	return FormatNumber(*price) + " " + currency
}
