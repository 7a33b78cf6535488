package model

import (
	"regexp"
	"strconv"
)

// UndefinedVolume is the sentinel returned by Size.Volume when the
// volume cannot be computed. It is deliberately negative: zero is a
// legitimately tiny volume, distinct from "not computable".
const UndefinedVolume = -1

var (
	wholeNumberPattern = regexp.MustCompile(`^-?\d+$`)
	decimalPattern     = regexp.MustCompile(`^-?\d*\.?\d*$`)
)

// ContainsNumber reports whether the input is a non-empty string of
// whole-number text (optional sign, digits only). Quantity fields must
// satisfy this grammar.
func ContainsNumber(input string) bool {
	return input != "" && wholeNumberPattern.MatchString(input)
}

// IsNumber reports whether the input matches the signed-optional
// decimal grammar. The empty string matches; callers that require a
// value must check for it separately. Note that strings such as "." or
// "-" match the grammar but do not parse as floats.
func IsNumber(input string) bool {
	return decimalPattern.MatchString(input)
}

// ParseNumber parses numeric text that passed IsNumber. The second
// return is false when the text is empty or not actually parseable.
func ParseNumber(input string) (float64, bool) {
	if input == "" || !IsNumber(input) {
		return 0, false
	}
	n, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Size is a three-dimensional box of sealed product. Each field holds
// raw, possibly-invalid user input; nothing is parsed until Volume.
type Size struct {
	Length string `json:"length"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

// Volume returns length × width × height in cm³ when all three fields
// hold parseable numeric text, and UndefinedVolume otherwise. The
// sentinel forces callers to branch instead of letting NaN propagate
// into a price.
func (s Size) Volume() float64 {
	length, ok := ParseNumber(s.Length)
	if !ok {
		return UndefinedVolume
	}
	width, ok := ParseNumber(s.Width)
	if !ok {
		return UndefinedVolume
	}
	height, ok := ParseNumber(s.Height)
	if !ok {
		return UndefinedVolume
	}
	return length * width * height
}

// FormValues is the complete snapshot of the subscription form inputs.
// Quantity and dimension fields hold raw text; they are validated, not
// trusted. The struct is comparable so an unchanged form can be
// detected with ==.
type FormValues struct {
	Term      Term   `json:"term"`
	Raw       string `json:"raw"`
	Slabbed   string `json:"slabbed"`
	HasSealed bool   `json:"has_sealed"`
	Size      Size   `json:"size"`
}

// EmptyFormValues returns the pristine form state for the given term.
func EmptyFormValues(term Term) FormValues {
	return FormValues{Term: term}
}

// FormErrors mirrors the form's input fields, one message slot per
// field plus the cross-field Volume slot. An empty string means no
// error. Instances are always rebuilt wholesale so a stale error for
// one field can never survive a change to another.
type FormErrors struct {
	Raw     string `json:"raw,omitempty"`
	Slabbed string `json:"slabbed,omitempty"`
	Length  string `json:"length,omitempty"`
	Width   string `json:"width,omitempty"`
	Height  string `json:"height,omitempty"`
	Volume  string `json:"volume,omitempty"`
}

// Empty reports whether no field carries an error.
func (e FormErrors) Empty() bool {
	return e == FormErrors{}
}

// SealedOK reports whether every sealed-related check (the three
// dimensions and the cross-field volume) passed.
func (e FormErrors) SealedOK() bool {
	return e.Length == "" && e.Width == "" && e.Height == "" && e.Volume == ""
}

// Fields returns the non-empty errors keyed by field name, for API
// responses.
func (e FormErrors) Fields() map[string]string {
	fields := make(map[string]string)
	for name, msg := range map[string]string{
		"raw":     e.Raw,
		"slabbed": e.Slabbed,
		"length":  e.Length,
		"width":   e.Width,
		"height":  e.Height,
		"volume":  e.Volume,
	} {
		if msg != "" {
			fields[name] = msg
		}
	}
	return fields
}

// TouchedInput tracks which fields the user has blurred. It gates error
// display only, never validation.
type TouchedInput struct {
	Raw     bool
	Slabbed bool
	Length  bool
	Width   bool
	Height  bool
}
