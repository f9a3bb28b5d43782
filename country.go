package celes

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Country represents a single ISO 3166-1 entry. Values are plain records
// copied out of the compiled-in table; they carry no state and are cheap to
// pass around.
type Country struct {
	// Value is the numeric code assigned to the country, 1-999.
	Value int
	// Alpha2 is the two letter code, always uppercase.
	Alpha2 string
	// Alpha3 is the three letter code, always uppercase.
	Alpha3 string
	// LongName is the official state name.
	LongName string
	// Aliases lists other names the country is commonly known by, in
	// registration order. It may be empty and must not be mutated.
	Aliases []string
}

// Code returns the numeric code in its canonical zero-padded three digit
// form, e.g. "004" for Afghanistan.
func (c Country) Code() string {
	return fmt.Sprintf("%03d", c.Value)
}

// String returns the long name with spaces removed, e.g.
// "TheUnitedStatesOfAmerica". The result is itself a valid FromString query.
func (c Country) String() string {
	return strings.ReplaceAll(c.LongName, " ", "")
}

// Equal reports whether two records describe the same entry field for field.
func (c Country) Equal(other Country) bool {
	if c.Value != other.Value ||
		c.Alpha2 != other.Alpha2 ||
		c.Alpha3 != other.Alpha3 ||
		c.LongName != other.LongName ||
		len(c.Aliases) != len(other.Aliases) {
		return false
	}
	for i, a := range c.Aliases {
		if other.Aliases[i] != a {
			return false
		}
	}
	return true
}

type countryJSON struct {
	Code     string   `json:"code"`
	Value    int      `json:"value"`
	Alpha2   string   `json:"alpha2"`
	Alpha3   string   `json:"alpha3"`
	LongName string   `json:"long_name"`
	Aliases  []string `json:"aliases"`
}

// MarshalJSON encodes the record as an object carrying every representation.
func (c Country) MarshalJSON() ([]byte, error) {
	aliases := c.Aliases
	if aliases == nil {
		aliases = []string{}
	}
	return json.Marshal(countryJSON{
		Code:     c.Code(),
		Value:    c.Value,
		Alpha2:   c.Alpha2,
		Alpha3:   c.Alpha3,
		LongName: c.LongName,
		Aliases:  aliases,
	})
}

// UnmarshalJSON decodes a record and resolves it against the table, so a
// decoded Country is always a canonical table entry. Payloads naming an
// unknown country, or whose code, alpha or name fields contradict the table,
// are rejected; the aliases field is not validated and the table's alias list
// is used regardless.
func (c *Country) UnmarshalJSON(data []byte) error {
	var raw countryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	found, err := FromValue(raw.Value)
	if err != nil {
		return err
	}
	if raw.Code != found.Code() ||
		raw.Alpha2 != found.Alpha2 ||
		raw.Alpha3 != found.Alpha3 ||
		raw.LongName != found.LongName {
		return errors.Errorf("country %q does not match the table entry for value %d", raw.Alpha2, raw.Value)
	}
	*c = found
	return nil
}
