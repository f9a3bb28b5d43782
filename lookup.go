package celes

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

var (
	indexOnce sync.Once

	byValue  map[int]int
	byAlpha2 map[string]int
	byAlpha3 map[string]int
	byName   map[string]int
	byAlias  map[string]int
)

// normalizeKey folds case and strips the spaces and underscores permitted in
// textual queries, so "aland_islands", "AlandIslands" and "ALAND ISLANDS"
// all produce the same key.
func normalizeKey(s string) string {
	s = cases.Fold().String(s)
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "_", "")
}

// buildIndexes derives the lookup maps from countryTable exactly once. A
// malformed table entry or duplicate key is a bug in the table itself and
// aborts instead of leaving a corrupt index behind.
func buildIndexes() {
	indexOnce.Do(func() {
		byValue = make(map[int]int, len(countryTable))
		byAlpha2 = make(map[string]int, len(countryTable))
		byAlpha3 = make(map[string]int, len(countryTable))
		byName = make(map[string]int, len(countryTable))
		byAlias = make(map[string]int)

		for i, c := range countryTable {
			if c.Value < 1 || c.Value > 999 {
				panic(fmt.Sprintf("celes: numeric code %d out of range for %q", c.Value, c.LongName))
			}
			if len(c.Alpha2) != 2 || len(c.Alpha3) != 3 || c.LongName == "" {
				panic(fmt.Sprintf("celes: malformed table entry %+v", c))
			}
			if _, dup := byValue[c.Value]; dup {
				panic(fmt.Sprintf("celes: duplicate numeric code %d", c.Value))
			}
			byValue[c.Value] = i

			a2 := normalizeKey(c.Alpha2)
			if _, dup := byAlpha2[a2]; dup {
				panic(fmt.Sprintf("celes: duplicate alpha-2 code %q", c.Alpha2))
			}
			byAlpha2[a2] = i

			a3 := normalizeKey(c.Alpha3)
			if _, dup := byAlpha3[a3]; dup {
				panic(fmt.Sprintf("celes: duplicate alpha-3 code %q", c.Alpha3))
			}
			byAlpha3[a3] = i

			name := normalizeKey(c.LongName)
			if _, dup := byName[name]; dup {
				panic(fmt.Sprintf("celes: duplicate long name %q", c.LongName))
			}
			byName[name] = i

			for _, a := range c.Aliases {
				key := normalizeKey(a)
				// First-registered record wins a shared alias.
				if _, taken := byAlias[key]; !taken {
					byAlias[key] = i
				}
			}
		}
	})
}

// All returns a copy of every known country in registration order.
func All() []Country {
	out := make([]Country, len(countryTable))
	copy(out, countryTable)
	return out
}

// Count returns the number of known countries.
func Count() int {
	return len(countryTable)
}

// FromValue returns the country with the given numeric code.
func FromValue(value int) (Country, error) {
	buildIndexes()
	if i, ok := byValue[value]; ok {
		return countryTable[i], nil
	}
	return Country{}, notFound(strconv.Itoa(value))
}

// FromCode returns the country whose canonical zero-padded three digit code
// matches, e.g. "004" but not "4". Surrounding whitespace is trimmed; no
// other leniency applies.
func FromCode(code string) (Country, error) {
	buildIndexes()
	s := strings.TrimSpace(code)
	if len(s) == 3 && isDigits(s) {
		v, _ := strconv.Atoi(s)
		if i, ok := byValue[v]; ok {
			return countryTable[i], nil
		}
	}
	return Country{}, notFound(code)
}

// FromAlpha2 returns the country with the given two letter code, ignoring
// case. Any non-matching input, including input of the wrong length, fails
// with ErrNotFound.
func FromAlpha2(alpha2 string) (Country, error) {
	buildIndexes()
	if i, ok := byAlpha2[normalizeKey(strings.TrimSpace(alpha2))]; ok {
		return countryTable[i], nil
	}
	return Country{}, notFound(alpha2)
}

// FromAlpha3 returns the country with the given three letter code, ignoring
// case.
func FromAlpha3(alpha3 string) (Country, error) {
	buildIndexes()
	if i, ok := byAlpha3[normalizeKey(strings.TrimSpace(alpha3))]; ok {
		return countryTable[i], nil
	}
	return Country{}, notFound(alpha3)
}

// FromName returns the country with the given official long name. Case,
// spaces and underscores are ignored, so "the_united_states_of_america" and
// "TheUnitedStatesOfAmerica" both match.
func FromName(name string) (Country, error) {
	buildIndexes()
	if i, ok := byName[normalizeKey(strings.TrimSpace(name))]; ok {
		return countryTable[i], nil
	}
	return Country{}, notFound(name)
}

// FromAlias returns the country known by the given informal alias, e.g.
// "Russia", "America" or "Scotland". If an alias were ever shared between
// records, the first-registered record wins.
func FromAlias(alias string) (Country, error) {
	buildIndexes()
	if i, ok := byAlias[normalizeKey(strings.TrimSpace(alias))]; ok {
		return countryTable[i], nil
	}
	return Country{}, notFound(alias)
}

// FromString resolves any representation of a country: numeric code, alpha-2,
// alpha-3, alias or long name, tried in that fixed order. The ordering is a
// documented policy: it keeps resolution deterministic when a query is valid
// for more than one stage ("Samoa" is an alias of American Samoa and the long
// name of Samoa, so it resolves to the former).
//
// FromString is total over all strings: malformed input of any kind fails
// with ErrNotFound and nothing else.
func FromString(s string) (Country, error) {
	buildIndexes()
	q := strings.TrimSpace(s)
	if v, err := strconv.Atoi(q); err == nil {
		if i, ok := byValue[v]; ok {
			return countryTable[i], nil
		}
		return Country{}, notFound(s)
	}
	key := normalizeKey(q)
	for _, index := range []map[string]int{byAlpha2, byAlpha3, byAlias, byName} {
		if i, ok := index[key]; ok {
			return countryTable[i], nil
		}
	}
	return Country{}, notFound(s)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
