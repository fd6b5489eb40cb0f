package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Korean)

// Group renders an integer won amount with thousands separators, e.g. 48,000.
func Group(amount int) string {
	return printer.Sprintf("%d", amount)
}

// Won renders an amount with the 원 suffix, e.g. 48,000원.
func Won(amount int) string {
	return Group(amount) + "원"
}
