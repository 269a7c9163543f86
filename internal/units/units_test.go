package units

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		token string
		code  string
	}{
		{"tbsp", "tbsp"},
		{"Tablespoons", "tbsp"},
		{"tsp.", "tsp"},
		{"CUPS", "cup"},
		{"c", "cup"},
		{"grams", "g"},
		{"lbs", "lb"},
		{"cloves", "clove"},
	}
	for _, tt := range tests {
		code, ok := Resolve(tt.token)
		require.True(t, ok, "token %q", tt.token)
		assert.Equal(t, tt.code, code)
	}

	_, ok := Resolve("flour")
	assert.False(t, ok)
	_, ok = Resolve("")
	assert.False(t, ok)
}

func TestConvert_SameFamily(t *testing.T) {
	tests := []struct {
		v        float64
		from, to string
		want     float64
	}{
		{3, "tsp", "tbsp", 1},
		{1, "tbsp", "tsp", 3},
		{1, "cup", "tbsp", 16},
		{2000, "ml", "l", 2},
		{1500, "g", "kg", 1.5},
		{32, "oz", "lb", 2},
		{5, "cup", "cup", 5},
	}
	for _, tt := range tests {
		got, err := Convert(tt.v, tt.from, tt.to)
		require.NoError(t, err, "%s -> %s", tt.from, tt.to)
		assert.InDelta(t, tt.want, got, 1e-9)
	}
}

func TestConvert_Incompatible(t *testing.T) {
	tests := []struct{ from, to string }{
		{"cup", "g"},    // volume vs weight
		{"cup", "ml"},   // imperial vs metric volume
		{"oz", "g"},     // imperial vs metric weight
		{"clove", "can"}, // count units never cross-convert
	}
	for _, tt := range tests {
		_, err := Convert(1, tt.from, tt.to)
		require.Error(t, err, "%s -> %s", tt.from, tt.to)
		assert.True(t, eris.Is(err, ErrIncompatibleUnits))
	}
}

func TestConvert_UnknownUnit(t *testing.T) {
	_, err := Convert(1, "parsec", "cup")
	require.Error(t, err)
	assert.False(t, eris.Is(err, ErrIncompatibleUnits))
}

func TestCompatible(t *testing.T) {
	assert.True(t, Compatible("tsp", "cup"))
	assert.True(t, Compatible("g", "kg"))
	assert.True(t, Compatible("clove", "clove"))
	assert.False(t, Compatible("cup", "ml"))
	assert.False(t, Compatible("cup", "g"))
	assert.False(t, Compatible("clove", "can"))
}

func TestMostGranular(t *testing.T) {
	assert.Equal(t, "tsp", MostGranular("tbsp", "tsp"))
	assert.Equal(t, "tsp", MostGranular("tsp", "cup"))
	assert.Equal(t, "g", MostGranular("kg", "g"))
	assert.Equal(t, "ml", MostGranular("ml", "l"))
}

func TestChooseDisplayUnit_Promotions(t *testing.T) {
	policy := DefaultDisplayPolicy()

	tests := []struct {
		v        float64
		code     string
		wantV    float64
		wantCode string
	}{
		{3, "tsp", 1, "tbsp"},     // promotes at threshold
		{2, "tsp", 2, "tsp"},      // below threshold
		{5, "tbsp", 5, "tbsp"},    // 5 tbsp stays tablespoons
		{8, "tbsp", 0.5, "cup"},   // half-cup point
		{15, "tsp", 5, "tbsp"},    // chains tsp -> tbsp
		{48, "tsp", 1, "cup"},     // chains tsp -> tbsp -> cup
		{16, "oz", 1, "lb"},
		{1000, "g", 1, "kg"},
		{2500, "ml", 2.5, "l"},
		{900, "g", 900, "g"},
	}
	for _, tt := range tests {
		v, code := policy.ChooseDisplayUnit(tt.v, tt.code)
		assert.InDelta(t, tt.wantV, v, 1e-9, "%g %s", tt.v, tt.code)
		assert.Equal(t, tt.wantCode, code, "%g %s", tt.v, tt.code)
	}
}

func TestLoadDisplayPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
promotions:
  - from: tsp
    to: tbsp
    min: 6
`), 0o644))

	policy, err := LoadDisplayPolicy(path)
	require.NoError(t, err)
	require.Len(t, policy, 1)

	// The file replaces the defaults: 3 tsp no longer promotes.
	v, code := policy.ChooseDisplayUnit(3, "tsp")
	assert.Equal(t, 3.0, v)
	assert.Equal(t, "tsp", code)

	v, code = policy.ChooseDisplayUnit(6, "tsp")
	assert.Equal(t, 2.0, v)
	assert.Equal(t, "tbsp", code)
}

func TestChooseDisplayUnit_CyclicPolicyTerminates(t *testing.T) {
	// A policy file can legally describe a promotion cycle; chaining
	// must still return instead of looping forever.
	policy := DisplayPolicy{
		{From: "tsp", To: "tbsp", Min: 3},
		{From: "tbsp", To: "tsp", Min: 1},
	}

	v, code := policy.ChooseDisplayUnit(3, "tsp")
	assert.Positive(t, v)
	assert.Contains(t, []string{"tsp", "tbsp"}, code)

	path := filepath.Join(t.TempDir(), "cyclic.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
promotions:
  - from: tsp
    to: tbsp
    min: 3
  - from: tbsp
    to: tsp
    min: 1
`), 0o644))

	loaded, err := LoadDisplayPolicy(path)
	require.NoError(t, err)
	v, code = loaded.ChooseDisplayUnit(6, "tsp")
	assert.Positive(t, v)
	assert.Contains(t, []string{"tsp", "tbsp"}, code)
}

func TestLoadDisplayPolicy_Invalid(t *testing.T) {
	dir := t.TempDir()

	badPair := filepath.Join(dir, "bad_pair.yaml")
	require.NoError(t, os.WriteFile(badPair, []byte(`
promotions:
  - from: cup
    to: g
    min: 2
`), 0o644))
	_, err := LoadDisplayPolicy(badPair)
	assert.Error(t, err)

	badMin := filepath.Join(dir, "bad_min.yaml")
	require.NoError(t, os.WriteFile(badMin, []byte(`
promotions:
  - from: tsp
    to: tbsp
    min: 0
`), 0o644))
	_, err = LoadDisplayPolicy(badMin)
	assert.Error(t, err)

	_, err = LoadDisplayPolicy(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
