package types

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Shape records how a tolerant field arrived from the StudyGo API.
type Shape int

const (
	// ShapeMissing means the field was absent, null, or of an unrecognized type.
	ShapeMissing Shape = iota
	// ShapeScalar means the field was a bare string or number.
	ShapeScalar
	// ShapeWrapped means the field was an object carrying the scalar under a known key.
	ShapeWrapped
)

// String returns a short name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeWrapped:
		return "wrapped"
	default:
		return "missing"
	}
}

// resolve inspects a raw JSON value that is either a scalar or an object
// holding the scalar under one of keys. Keys are tried in order.
func resolve(data []byte, keys ...string) (gjson.Result, Shape) {
	r := gjson.ParseBytes(data)

	switch {
	case r.IsObject():
		for _, key := range keys {
			if v := r.Get(key); v.Exists() && v.Type != gjson.Null {
				return v, ShapeWrapped
			}
		}
		return gjson.Result{}, ShapeWrapped
	case r.Type == gjson.String, r.Type == gjson.Number:
		return r, ShapeScalar
	default:
		// null, booleans and arrays carry nothing usable
		return gjson.Result{}, ShapeMissing
	}
}

// Code is a locale or country code that the API sends either as "nl-NL" or
// as {"code": "nl-NL"}.
type Code struct {
	Value string
	Shape Shape
}

// UnmarshalJSON implements json.Unmarshaler for both shapes of a code field.
func (c *Code) UnmarshalJSON(data []byte) error {
	v, shape := resolve(data, "code")
	c.Value, c.Shape = v.String(), shape
	return nil
}

func (c Code) String() string { return c.Value }

// Theme is the user's display theme. It arrives as a bare string, as
// {"selected_theme": "..."} or as {"code": "..."}.
type Theme struct {
	Value string
	Shape Shape
}

// systemThemePrefix marks themes that follow the operating system setting.
const systemThemePrefix = "system_"

// UnmarshalJSON implements json.Unmarshaler for every known shape of a theme field.
func (t *Theme) UnmarshalJSON(data []byte) error {
	v, shape := resolve(data, "selected_theme", "code")
	t.Value, t.Shape = v.String(), shape
	return nil
}

// Normalized returns the theme with a leading "system_" removed, so
// "system_dark" and "dark" both yield "dark".
func (t Theme) Normalized() string {
	return strings.TrimPrefix(t.Value, systemThemePrefix)
}

func (t Theme) String() string { return t.Normalized() }

// ImageURL is an image reference sent either as a URL string or as
// {"image_url": "..."}.
type ImageURL struct {
	Value string
	Shape Shape
}

// UnmarshalJSON implements json.Unmarshaler for both shapes of an image field.
func (i *ImageURL) UnmarshalJSON(data []byte) error {
	v, shape := resolve(data, "image_url")
	i.Value, i.Shape = v.String(), shape
	return nil
}

func (i ImageURL) String() string { return i.Value }

// Name is a named reference (subject, book) sent either as a plain string or
// as {"name": "..."}.
type Name struct {
	Value string
	Shape Shape
}

// UnmarshalJSON implements json.Unmarshaler for both shapes of a name field.
func (n *Name) UnmarshalJSON(data []byte) error {
	v, shape := resolve(data, "name")
	n.Value, n.Shape = v.String(), shape
	return nil
}

func (n Name) String() string { return n.Value }

// Ptr returns nil when the name was missing, otherwise a pointer to its value.
func (n *Name) Ptr() *string {
	if n == nil || n.Shape == ShapeMissing {
		return nil
	}
	v := n.Value
	return &v
}

// Count is a counter sent either as a number or as {"count": n}.
type Count struct {
	Value int
	Shape Shape
}

// UnmarshalJSON implements json.Unmarshaler for both shapes of a counter field.
func (c *Count) UnmarshalJSON(data []byte) error {
	v, shape := resolve(data, "count")
	c.Value, c.Shape = int(v.Int()), shape
	return nil
}

// Identifier is an id the API sends either as a string ("526301") or as a number.
type Identifier string

// UnmarshalJSON implements json.Unmarshaler accepting string and numeric ids.
func (id *Identifier) UnmarshalJSON(data []byte) error {
	v, _ := resolve(data)
	*id = Identifier(v.String())
	return nil
}

func (id Identifier) String() string { return string(id) }
