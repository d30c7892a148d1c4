package countries

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Country
	}{
		{"exact", "France", Country{Code: "FRA", Alpha2: "FR", Name: "France"}},
		{"case folded", "uNiTeD sTaTeS", Country{Code: "USA", Alpha2: "US", Name: "United States"}},
		{"whitespace normalized", "  United   States ", Country{Code: "USA", Alpha2: "US", Name: "United States"}},
		{"remapped alias", "Chinese Taipei", Country{Code: "TWN", Alpha2: "TW", Name: "Taiwan"}},
		{"remapped rename", "Türkiye", Country{Code: "TUR", Alpha2: "TR", Name: "Turkey"}},
		{"remapped long form", "Republic of Korea", Country{Code: "KOR", Alpha2: "KR", Name: "South Korea"}},
		{"partial match", "Kingdom of Spain", Country{Code: "ESP", Alpha2: "ES", Name: "Spain"}},
		{"partial match decoration", "Iran, Islamic Republic of", Country{Code: "IRN", Alpha2: "IR", Name: "Iran"}},
		{"kosovo user-assigned code", "Kosovo", Country{Code: "KSV", Alpha2: "XK", Name: "Kosovo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveHistorical(t *testing.T) {
	for _, name := range []string{"Soviet Union", "East Germany", "Czechoslovakia", "FR Yugoslavia"} {
		_, err := Resolve(name)
		require.ErrorIs(t, err, ErrHistorical, "Resolve(%q)", name)
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, name := range []string{"Atlantis", ""} {
		_, err := Resolve(name)

		var me *MappingError
		require.ErrorAs(t, err, &me, "Resolve(%q)", name)
	}
}

func TestResolveDeterministic(t *testing.T) {
	first, err := Resolve("Republic of Moldova")
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		got, err := Resolve("Republic of Moldova")
		require.NoError(t, err)
		require.Equal(t, first, got)
	}
}

func TestAlpha2(t *testing.T) {
	a2, ok := Alpha2("KSV")
	require.True(t, ok)
	require.Equal(t, "XK", a2)

	_, ok = Alpha2("ZZZ")
	require.False(t, ok)
}

func TestTablesConsistent(t *testing.T) {
	for name, code := range codes {
		_, ok := alpha2[code]
		require.True(t, ok, "country %s (%s) has no alpha-2 code", name, code)
	}
	for alias, canonical := range remap {
		_, ok := codes[canonical]
		require.True(t, ok, "remap target %q for alias %q is not a canonical name", canonical, alias)
	}
}
