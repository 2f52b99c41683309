// Package form turns raw submitted text into validated values.
//
// Parsing and validation never touch a store, so a form can be checked
// without any persistence wired up.
package form

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/vietanh2810/icecream-api/internal/domain"
)

const (
	NameMaxLength = 40

	SellpriceMaxDigits     = 5
	SellpriceDecimalPlaces = 2

	msgRequired = "This field is required."
	msgNumber   = "Enter a number."
)

var (
	// A digit has to follow the optional sign and dot, so "", "." and "-" fail.
	floatPattern   = regexp2.MustCompile(`^[+-]?(?=\.?\d)\d*(?:\.\d*)?(?:[eE][+-]?\d+)?$`, regexp2.None)
	decimalPattern = regexp2.MustCompile(`^[+-]?(?=\.?\d)\d*(?:\.\d*)?$`, regexp2.None)
)

// Rules holds the validation switches that are configurable at runtime.
type Rules struct {
	AllowNegativeLitres bool
}

func DefaultRules() Rules {
	return Rules{AllowNegativeLitres: true}
}

// Flavour is the raw text of a submitted flavour form.
type Flavour struct {
	Name      string `json:"name" form:"name"`
	Litres    string `json:"litres" form:"litres"`
	Sellprice string `json:"sellprice" form:"sellprice"`
}

// FlavourData is a Flavour form that passed validation.
type FlavourData struct {
	Name      string
	Litres    float64
	Sellprice decimal.Decimal
}

// ValidationError carries one message per invalid field.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	return e.Fields.Error()
}

// Messages returns the field messages keyed by field name.
func (e *ValidationError) Messages() map[string]string {
	messages := make(map[string]string, len(e.Fields))
	for field, err := range e.Fields {
		messages[field] = err.Error()
	}

	return messages
}

// FieldNames returns the invalid field names in a stable order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	return names
}

func FlavourFromValues(values url.Values) Flavour {
	return Flavour{
		Name:      values.Get("name"),
		Litres:    values.Get("litres"),
		Sellprice: values.Get("sellprice"),
	}
}

// FlavourFromEntity pre-fills a form with the stored values of f.
func FlavourFromEntity(f domain.Flavour) Flavour {
	return Flavour{
		Name:      f.Name,
		Litres:    strconv.FormatFloat(f.Litres, 'f', -1, 64),
		Sellprice: f.Sellprice.StringFixed(SellpriceDecimalPlaces),
	}
}

func (f Flavour) trimmed() Flavour {
	return Flavour{
		Name:      strings.TrimSpace(f.Name),
		Litres:    strings.TrimSpace(f.Litres),
		Sellprice: strings.TrimSpace(f.Sellprice),
	}
}

// Clean validates the form against rules. On failure the returned error is a
// *ValidationError.
func (f Flavour) Clean(rules Rules) (FlavourData, error) {
	in := f.trimmed()

	err := validation.ValidateStruct(
		&in,
		validation.Field(&in.Name,
			validation.Required.Error(msgRequired),
			validation.By(maxRunes(NameMaxLength)),
		),
		validation.Field(&in.Litres,
			validation.Required.Error(msgRequired),
			validation.By(litresRule(rules)),
		),
		validation.Field(&in.Sellprice,
			validation.Required.Error(msgRequired),
			validation.By(decimalRule(SellpriceMaxDigits, SellpriceDecimalPlaces)),
		),
	)
	if err != nil {
		var fields validation.Errors
		if errors.As(err, &fields) {
			return FlavourData{}, &ValidationError{Fields: fields}
		}

		return FlavourData{}, fmt.Errorf("validation.ValidateStruct -> %w", err)
	}

	litres, _ := parseFloat(in.Litres)
	sellprice, _ := decimal.NewFromString(in.Sellprice)

	return FlavourData{
		Name:      in.Name,
		Litres:    litres,
		Sellprice: sellprice.Round(SellpriceDecimalPlaces),
	}, nil
}

// Apply copies the cleaned values onto target, keeping its identity.
func (d FlavourData) Apply(target *domain.Flavour) {
	target.Name = d.Name
	target.Litres = d.Litres
	target.Sellprice = d.Sellprice
}

func maxRunes(max int) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if n := utf8.RuneCountInString(s); n > max {
			return fmt.Errorf("Ensure this value has at most %d characters (it has %d).", max, n)
		}

		return nil
	}
}

func parseFloat(s string) (float64, bool) {
	if ok, err := floatPattern.MatchString(s); err != nil || !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}

	return v, true
}

func litresRule(rules Rules) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		v, ok := parseFloat(s)
		if !ok {
			return errors.New(msgNumber)
		}
		if !rules.AllowNegativeLitres && v < 0 {
			return errors.New("Ensure this value is greater than or equal to 0.")
		}

		return nil
	}
}

// decimalRule checks a decimal literal against a numeric(maxDigits, places)
// column. Leading zeros do not count, trailing zeros after the point do.
func decimalRule(maxDigits, places int) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if ok, err := decimalPattern.MatchString(s); err != nil || !ok {
			return errors.New(msgNumber)
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return errors.New(msgNumber)
		}

		digits, decimals := countDigits(d)
		switch {
		case digits > maxDigits:
			return fmt.Errorf("Ensure that there are no more than %d digits in total.", maxDigits)
		case decimals > places:
			return fmt.Errorf("Ensure that there are no more than %d decimal places.", places)
		case digits-decimals > maxDigits-places:
			return fmt.Errorf("Ensure that there are no more than %d digits before the decimal point.", maxDigits-places)
		}

		return nil
	}
}

func countDigits(d decimal.Decimal) (digits, decimals int) {
	coefficient := d.Coefficient()
	coefficientLen := len(coefficient.Abs(coefficient).String())
	exponent := int(d.Exponent())

	if exponent >= 0 {
		digits = coefficientLen
		if d.Coefficient().Sign() != 0 {
			digits += exponent
		}
		return digits, 0
	}

	if -exponent > coefficientLen {
		return -exponent, -exponent
	}

	return coefficientLen, -exponent
}
