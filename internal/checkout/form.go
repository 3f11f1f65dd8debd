// Package checkout validates the mock payment form and turns a cart into an order.
package checkout

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Form is the checkout form as submitted.
type Form struct {
	Name    string
	Email   string
	Address string
	City    string
	ZIP     string
	Card    string
}

// Field names used as FieldErrors keys, in form order.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldAddress = "address"
	FieldCity    = "city"
	FieldZIP     = "zip"
	FieldCard    = "card"
)

// Fields lists the form fields top to bottom.
func Fields() []string {
	return []string{FieldName, FieldEmail, FieldAddress, FieldCity, FieldZIP, FieldCard}
}

// FieldErrors maps a field to its inline message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, f := range Fields() {
		if msg, ok := fe[f]; ok {
			parts = append(parts, f+": "+msg)
		}
	}
	var extra []string
	for f, msg := range fe {
		if !isField(f) {
			extra = append(extra, f+": "+msg)
		}
	}
	sort.Strings(extra)
	return strings.Join(append(parts, extra...), "; ")
}

func isField(name string) bool {
	for _, f := range Fields() {
		if f == name {
			return true
		}
	}
	return false
}

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	cardPattern  = regexp.MustCompile(`^\d{16}$`)
)

// NormalizeCard strips all whitespace from a card number, including Unicode spaces such as
// the non-breaking space some sites paste between digit groups.
func NormalizeCard(card string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, card)
}

// Validate checks every field and reports all failures at once. It returns nil when the
// form may be submitted.
func (f Form) Validate() FieldErrors {
	fe := FieldErrors{}
	if f.Name == "" {
		fe[FieldName] = "Name is required"
	}
	if f.Email == "" || !emailPattern.MatchString(f.Email) {
		fe[FieldEmail] = "Valid email is required"
	}
	if f.Address == "" {
		fe[FieldAddress] = "Address is required"
	}
	if f.City == "" {
		fe[FieldCity] = "City is required"
	}
	if f.ZIP == "" {
		fe[FieldZIP] = "ZIP code is required"
	}
	if f.Card == "" || !cardPattern.MatchString(NormalizeCard(f.Card)) {
		fe[FieldCard] = "Card number must be 16 digits"
	}
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// MaskedCard returns the card number with all but the last four digits hidden.
func (f Form) MaskedCard() string {
	card := NormalizeCard(f.Card)
	if len(card) <= 4 {
		return card
	}
	return strings.Repeat("•", len(card)-4) + card[len(card)-4:]
}
