package celes

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestRoundTripByEveryKey(t *testing.T) {
	for _, c := range All() {
		got, err := FromValue(c.Value)
		require.NoError(t, err, "FromValue(%d)", c.Value)
		require.True(t, got.Equal(c), "FromValue(%d)", c.Value)

		got, err = FromCode(c.Code())
		require.NoError(t, err, "FromCode(%s)", c.Code())
		require.True(t, got.Equal(c), "FromCode(%s)", c.Code())

		got, err = FromAlpha2(c.Alpha2)
		require.NoError(t, err, "FromAlpha2(%s)", c.Alpha2)
		require.True(t, got.Equal(c), "FromAlpha2(%s)", c.Alpha2)

		got, err = FromAlpha3(c.Alpha3)
		require.NoError(t, err, "FromAlpha3(%s)", c.Alpha3)
		require.True(t, got.Equal(c), "FromAlpha3(%s)", c.Alpha3)

		got, err = FromName(c.LongName)
		require.NoError(t, err, "FromName(%s)", c.LongName)
		require.True(t, got.Equal(c), "FromName(%s)", c.LongName)

		got, err = FromName(c.String())
		require.NoError(t, err, "FromName(%s)", c.String())
		require.True(t, got.Equal(c), "FromName(%s)", c.String())

		// FromString runs the alias stage before the name stage, so the
		// string form only round-trips when it is not also another record's
		// alias ("Samoa" is American Samoa's; see TestFromStringPrecedence).
		if alias, aliasErr := FromAlias(c.String()); aliasErr != nil || alias.Equal(c) {
			got, err = FromString(c.String())
			require.NoError(t, err, "FromString(%s)", c.String())
			require.True(t, got.Equal(c), "FromString(%s)", c.String())
		}

		for _, alias := range c.Aliases {
			got, err = FromAlias(alias)
			require.NoError(t, err, "FromAlias(%s)", alias)
			require.True(t, got.Equal(c), "FromAlias(%s) for %s", alias, c.LongName)
		}
	}
}

func TestCaseInsensitive(t *testing.T) {
	for _, c := range All() {
		lower, err := FromAlpha2(strings.ToLower(c.Alpha2))
		require.NoError(t, err, "FromAlpha2(%s)", strings.ToLower(c.Alpha2))
		upper, err := FromAlpha2(strings.ToUpper(c.Alpha2))
		require.NoError(t, err)
		require.True(t, lower.Equal(upper), "alpha-2 %s", c.Alpha2)

		got, err := FromAlpha3(strings.ToLower(c.Alpha3))
		require.NoError(t, err, "FromAlpha3(%s)", strings.ToLower(c.Alpha3))
		require.True(t, got.Equal(c))

		got, err = FromName(strings.ToUpper(c.LongName))
		require.NoError(t, err, "FromName(%s)", strings.ToUpper(c.LongName))
		require.True(t, got.Equal(c))
	}
}

func TestAliasResolution(t *testing.T) {
	cases := []struct {
		alpha2  string
		queries []string
	}{
		{alpha2: "US", queries: []string{"America", "USA", "US", "UnitedStates", "united states", "840", "TheUnitedStatesOfAmerica"}},
		{alpha2: "GB", queries: []string{"England", "GB", "Scotland", "GreatBritain", "UnitedKingdom", "NorthernIreland", "gbr"}},
		{alpha2: "RU", queries: []string{"Russia", "RussianFederation", "TheRussianFederation"}},
		{alpha2: "NL", queries: []string{"Holland", "Netherlands", "TheNetherlands"}},
		{alpha2: "VA", queries: []string{"Vatican", "VaticanCity", "HolySee"}},
		{alpha2: "LA", queries: []string{"Laos", "LaoPeoplesDemocraticRepublic"}},
		{alpha2: "MM", queries: []string{"Burma", "Myanmar"}},
		{alpha2: "SZ", queries: []string{"Swaziland", "Eswatini"}},
		{alpha2: "CI", queries: []string{"IvoryCoast", "CoteDIvoire"}},
		{alpha2: "CV", queries: []string{"CapeVerde", "CaboVerde"}},
		{alpha2: "MK", queries: []string{"Macedonia", "NorthMacedonia"}},
		{alpha2: "MO", queries: []string{"Macau", "Macao"}},
		{alpha2: "SY", queries: []string{"Syria", "SyrianArabRepublic"}},
		{alpha2: "TR", queries: []string{"Turkey", "Turkiye", "Türkiye"}},
		{alpha2: "CZ", queries: []string{"CzechRepublic", "Czechia"}},
		{alpha2: "TL", queries: []string{"EastTimor", "TimorLeste"}},
		{alpha2: "KP", queries: []string{"NorthKorea", "DemocraticPeoplesRepublicOfKorea"}},
		{alpha2: "KR", queries: []string{"SouthKorea", "RepublicOfKorea"}},
	}

	for _, tc := range cases {
		t.Run(tc.alpha2, func(t *testing.T) {
			want, err := FromAlpha2(tc.alpha2)
			require.NoError(t, err)
			for _, q := range tc.queries {
				got, err := FromString(q)
				require.NoError(t, err, "FromString(%s)", q)
				require.True(t, got.Equal(want), "FromString(%s) = %s, want %s", q, got.Alpha2, tc.alpha2)
			}
		})
	}
}

func TestFromStringPrecedence(t *testing.T) {
	// "Samoa" is both an alias of American Samoa and the long name of Samoa;
	// the alias stage runs first.
	got, err := FromString("Samoa")
	require.NoError(t, err)
	require.Equal(t, "AS", got.Alpha2)

	got, err = FromName("Samoa")
	require.NoError(t, err)
	require.Equal(t, "WS", got.Alpha2)

	got, err = FromAlias("Samoa")
	require.NoError(t, err)
	require.Equal(t, "AS", got.Alpha2)

	// Numeric queries match by value whether or not they are zero-padded.
	for _, q := range []string{"4", "04", "004"} {
		got, err = FromString(q)
		require.NoError(t, err, "FromString(%s)", q)
		require.Equal(t, "AF", got.Alpha2)
	}
}

func TestFromNameIgnoresSpacesAndUnderscores(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "underscores", input: "aland_islands", want: "AX"},
		{name: "no separators", input: "AlandIslands", want: "AX"},
		{name: "spaces", input: "ALAND ISLANDS", want: "AX"},
		{name: "full state name", input: "the_united_kingdom_of_great_britain_and_northern_ireland", want: "GB"},
		{name: "comma kept", input: "Taiwan, Republic Of China", want: "TW"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromName(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.Alpha2)
		})
	}
}

func TestFromCodeRequiresCanonicalForm(t *testing.T) {
	got, err := FromCode("004")
	require.NoError(t, err)
	require.Equal(t, "AF", got.Alpha2)

	got, err = FromCode(" 040 ")
	require.NoError(t, err)
	require.Equal(t, "AT", got.Alpha2)

	for _, q := range []string{"4", "40", "+04", "0004", "00x", "abc", ""} {
		_, err = FromCode(q)
		require.ErrorIs(t, err, ErrNotFound, "FromCode(%q)", q)
	}
}

func TestNotFound(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{name: "value out of range", err: mustFail(FromValue(9999))},
		{name: "value zero", err: mustFail(FromValue(0))},
		{name: "value unassigned", err: mustFail(FromValue(1))},
		{name: "alpha2 unassigned", err: mustFail(FromAlpha2("ZZ"))},
		{name: "alpha3 unassigned", err: mustFail(FromAlpha3("XXX"))},
		{name: "unknown alias", err: mustFail(FromAlias("Atlantis"))},
		{name: "unknown name", err: mustFail(FromName("Wakanda"))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.err)
			require.True(t, errors.Is(tc.err, ErrNotFound))
		})
	}
}

func TestNotFoundCarriesQuery(t *testing.T) {
	_, err := FromAlpha2("ZZ")
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), `"ZZ"`)

	_, err = FromValue(9999)
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "9999")
}

func TestFromStringIsTotal(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"hello",
		"aaa",
		"ZZZZ",
		"zz+",
		"99999",
		"-12",
		"1e3",
		"☃",
		"日本語のテキスト",
		"\x00\x01",
		strings.Repeat("a", 4096),
	}

	for _, q := range inputs {
		_, err := FromString(q)
		require.ErrorIs(t, err, ErrNotFound, "FromString(%q)", q)
	}
}

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "Aland_Islands", want: "alandislands"},
		{input: "ALAND ISLANDS", want: "alandislands"},
		{input: "The United States Of America", want: "theunitedstatesofamerica"},
		{input: "US", want: "us"},
		{input: "", want: ""},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, normalizeKey(tc.input), "normalizeKey(%q)", tc.input)
	}
}

func mustFail(_ Country, err error) error {
	return err
}
