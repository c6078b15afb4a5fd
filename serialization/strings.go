package serialization

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/eagleviewent/go-utilities/errors"
)

var (
	// ensure JSONString implements valuer and scanner interface.
	_ sql.Scanner   = (*JSONString)(nil)
	_ driver.Valuer = (*JSONString)(nil)

	// ensure JSONString implements json marshaller and unmarshaler interface.
	_ json.Marshaler   = (*JSONString)(nil)
	_ json.Unmarshaler = (*JSONString)(nil)

	// ensure XMLString implements valuer and scanner interface.
	_ sql.Scanner   = (*XMLString)(nil)
	_ driver.Valuer = (*XMLString)(nil)
)

// JSONString is a trimmed string that may hold a JSON document.
// Construction never fails; IsValid reports whether the text parsed.
type JSONString struct {
	value string
	valid bool
}

// NewJSONString trims s and checks whether it is well formed JSON.
func NewJSONString(s string) JSONString {
	s = strings.TrimSpace(s)

	return JSONString{value: s, valid: json.Valid([]byte(s))}
}

// String returns the stored text.
func (j JSONString) String() string { return j.value }

// IsEmpty reports whether the stored text is empty.
func (j JSONString) IsEmpty() bool { return j.value == "" }

// IsValid reports whether the stored text is well formed JSON.
func (j JSONString) IsValid() bool { return j.valid }

// Equal compares the stored texts exactly.
func (j JSONString) Equal(x JSONString) bool { return j.value == x.value }

// As decodes the stored document into v.
func (j JSONString) As(v any) error {
	if j.IsEmpty() {
		return errors.NewInvalidArgument("json string is empty")
	}

	return json.Unmarshal([]byte(j.value), v)
}

// MarshalJSON embeds a valid document as is and any other text as a
// JSON string.
func (j JSONString) MarshalJSON() ([]byte, error) {
	if j.valid {
		return []byte(j.value), nil
	}

	return json.Marshal(j.value)
}

// UnmarshalJSON accepts either a JSON string holding a document or
// a document.
func (j *JSONString) UnmarshalJSON(b []byte) error {
	var s string

	if err := json.Unmarshal(b, &s); err == nil {
		*j = NewJSONString(s)

		return nil
	}

	*j = NewJSONString(string(b))

	return nil
}

// Value defines how the JSONString is stored in the database.
func (j JSONString) Value() (driver.Value, error) {
	return j.value, nil
}

// Scan defines how the JSONString is read from the database.
func (j *JSONString) Scan(src any) error {
	s, err := scanText(src, "JSONString")
	if err != nil {
		return err
	}

	*j = NewJSONString(s)

	return nil
}

// XMLString is a trimmed string that may hold an XML document.
// Construction never fails; IsValid reports whether the text parsed.
type XMLString struct {
	value string
	valid bool
}

// NewXMLString trims s and checks whether it is a well formed XML
// document with a root element.
func NewXMLString(s string) XMLString {
	s = strings.TrimSpace(s)

	return XMLString{value: s, valid: validXML(s)}
}

// String returns the stored text.
func (x XMLString) String() string { return x.value }

// IsEmpty reports whether the stored text is empty.
func (x XMLString) IsEmpty() bool { return x.value == "" }

// IsValid reports whether the stored text is well formed XML.
func (x XMLString) IsValid() bool { return x.valid }

// Equal compares the stored texts exactly.
func (x XMLString) Equal(y XMLString) bool { return x.value == y.value }

// As decodes the stored document into v.
func (x XMLString) As(v any) error {
	if x.IsEmpty() {
		return errors.NewInvalidArgument("xml string is empty")
	}

	return xml.Unmarshal([]byte(x.value), v)
}

// Value defines how the XMLString is stored in the database.
func (x XMLString) Value() (driver.Value, error) {
	return x.value, nil
}

// Scan defines how the XMLString is read from the database.
func (x *XMLString) Scan(src any) error {
	s, err := scanText(src, "XMLString")
	if err != nil {
		return err
	}

	*x = NewXMLString(s)

	return nil
}

func validXML(s string) bool {
	if s == "" {
		return false
	}

	var (
		dec   = xml.NewDecoder(strings.NewReader(s))
		depth int
		roots int
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return roots == 1 && depth == 0
		}

		if err != nil {
			return false
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
			}

			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return false
			}
		}
	}
}

func scanText(src any, typeName string) (string, error) {
	switch t := src.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf(
			"%w: could not scan type %T into %s",
			errors.ErrInvalidValue,
			t,
			typeName,
		)
	}
}
