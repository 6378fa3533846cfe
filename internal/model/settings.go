package model

// Settings is the single process-wide preferences record.
type Settings struct {
	Currency   string `json:"currency"`
	DateFormat string `json:"dateFormat"`
	Theme      string `json:"theme"`
}

// Supported currencies.
const (
	CurrencyINR = "INR"
	CurrencyEUR = "EUR"
	CurrencyGBP = "GBP"
	CurrencyUSD = "USD"
)

// Supported date display formats.
const (
	DateFormatMDY = "MM/DD/YYYY"
	DateFormatDMY = "DD/MM/YYYY"
	DateFormatISO = "YYYY-MM-DD"
)

// DefaultSettings returns the factory defaults.
func DefaultSettings() Settings {
	return Settings{
		Currency:   CurrencyINR,
		DateFormat: DateFormatDMY,
		Theme:      "light",
	}
}

// Merge overlays non-empty fields of over onto s, field by field.
func (s Settings) Merge(over Settings) Settings {
	if over.Currency != "" {
		s.Currency = over.Currency
	}
	if over.DateFormat != "" {
		s.DateFormat = over.DateFormat
	}
	if over.Theme != "" {
		s.Theme = over.Theme
	}
	return s
}

// ValidCurrency reports whether c is a supported currency code.
func ValidCurrency(c string) bool {
	switch c {
	case CurrencyINR, CurrencyEUR, CurrencyGBP, CurrencyUSD:
		return true
	}
	return false
}

// ValidDateFormat reports whether f is a supported date display format.
func ValidDateFormat(f string) bool {
	switch f {
	case DateFormatMDY, DateFormatDMY, DateFormatISO:
		return true
	}
	return false
}
