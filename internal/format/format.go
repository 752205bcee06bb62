// Package format fixes currency and date presentation to Brazilian
// conventions. Everything here is pure.
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

var months = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// BRL renders d as "R$ 1.450,00".
func BRL(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return "R$ " + printer.Sprint(number.Decimal(f, number.Scale(2)))
}

// ShortDate renders t as dd/MM/yyyy.
func ShortDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// LongDate renders t as "10 de dezembro de 2023".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}
