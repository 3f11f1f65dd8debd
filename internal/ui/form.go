package ui

import (
	"strings"
	"unicode/utf8"
)

// Field is one text input.
type Field struct {
	Name   string
	Label  string
	Value  string
	Secret bool
	Max    int // rune limit; 0 = unlimited
}

// Insert appends r unless the field is full. Control characters are ignored.
func (f *Field) Insert(r rune) {
	if r < ' ' || r == utf8.RuneError {
		return
	}
	if f.Max > 0 && utf8.RuneCountInString(f.Value) >= f.Max {
		return
	}
	f.Value += string(r)
}

// Paste inserts s rune by rune, dropping newlines.
func (f *Field) Paste(s string) {
	for _, r := range s {
		f.Insert(r)
	}
}

// Backspace removes the last rune.
func (f *Field) Backspace() {
	if f.Value == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(f.Value)
	f.Value = f.Value[:len(f.Value)-size]
}

// Display is the text drawn in the input: bullets for secret fields.
func (f *Field) Display() string {
	if f.Secret {
		return strings.Repeat("•", utf8.RuneCountInString(f.Value))
	}
	return f.Value
}

// Form is an ordered set of fields with one focused field.
type Form struct {
	Fields []*Field
	focus  int
}

// NewForm returns a form focused on its first field.
func NewForm(fields ...*Field) *Form {
	return &Form{Fields: fields}
}

// Focused returns the focused field, or nil for an empty form.
func (f *Form) Focused() *Field {
	if len(f.Fields) == 0 {
		return nil
	}
	return f.Fields[f.focus]
}

// FocusIndex returns the index of the focused field.
func (f *Form) FocusIndex() int {
	return f.focus
}

// Focus moves focus to field i (ignored when out of range).
func (f *Form) Focus(i int) {
	if i >= 0 && i < len(f.Fields) {
		f.focus = i
	}
}

// Next moves focus forward, wrapping at the end.
func (f *Form) Next() {
	if len(f.Fields) > 0 {
		f.focus = (f.focus + 1) % len(f.Fields)
	}
}

// Prev moves focus backward, wrapping at the start.
func (f *Form) Prev() {
	if n := len(f.Fields); n > 0 {
		f.focus = (f.focus - 1 + n) % n
	}
}

// Get returns the value of the named field.
func (f *Form) Get(name string) string {
	for _, fl := range f.Fields {
		if fl.Name == name {
			return fl.Value
		}
	}
	return ""
}

// Set assigns the value of the named field.
func (f *Form) Set(name, value string) {
	for _, fl := range f.Fields {
		if fl.Name == name {
			fl.Value = value
		}
	}
}

// Reset clears every value and focuses the first field.
func (f *Form) Reset() {
	for _, fl := range f.Fields {
		fl.Value = ""
	}
	f.focus = 0
}
