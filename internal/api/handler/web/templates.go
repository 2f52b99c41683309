package web

import (
	"embed"
	"html/template"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/vietanh2810/icecream-api/internal/form"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"litres": humanize.Commaf,
	"price": func(d decimal.Decimal) string {
		return d.StringFixed(form.SellpriceDecimalPlaces)
	},
	"count": func(n int) string {
		return humanize.Comma(int64(n))
	},
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
