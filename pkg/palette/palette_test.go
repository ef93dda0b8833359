package palette

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestShadePaletteKeepsStepOrder(t *testing.T) {
	t.Parallel()

	p := NewShadePalette(map[Step]string{900: "#7f1d1d", 50: "#fef2f2", 500: "#ef4444"})
	assert.Equal(t, []Step{50, 500, 900}, p.Steps())

	p = p.Set(100, "#fee2e2")
	assert.Equal(t, []Step{50, 100, 500, 900}, p.Steps())

	replaced := p.Set(500, "#f87171")
	got, ok := replaced.Get(500)
	require.True(t, ok)
	assert.Equal(t, "#f87171", got)

	original, _ := p.Get(500)
	assert.Equal(t, "#ef4444", original, "Set must not mutate the receiver")

	_, ok = p.Get(950)
	assert.False(t, ok)
}

func TestShadePaletteJSON(t *testing.T) {
	t.Parallel()

	p := NewShadePalette(map[Step]string{950: "#450a0a", 50: "#fef2f2", 500: "#ef4444"})
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"50":"#fef2f2","500":"#ef4444","950":"#450a0a"}`, string(data))

	var decoded ShadePalette
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, p, decoded)

	err = json.Unmarshal([]byte(`{"fifty":"#fff"}`), &decoded)
	assert.ErrorContains(t, err, "not an integer")
}

func TestValue(t *testing.T) {
	t.Parallel()

	single := SingleValue("#ffffff")
	v, ok := single.Single()
	assert.True(t, ok)
	assert.Equal(t, "#ffffff", v)
	_, ok = single.Shades()
	assert.False(t, ok)
	assert.Equal(t, 1, single.Len())

	ramp := ShadesValue(NewShadePalette(map[Step]string{1: "#e6f4ff", 2: "#bae0ff"}))
	_, ok = ramp.Single()
	assert.False(t, ok)
	shades, ok := ramp.Shades()
	assert.True(t, ok)
	assert.Len(t, shades, 2)
	assert.Equal(t, 2, ramp.Len())
}

func TestNamedPaletteSetKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	var p NamedPalette
	assert.False(t, p.Set("red", SingleValue("#f00")))
	assert.False(t, p.Set("blue", SingleValue("#00f")))
	assert.True(t, p.Set("red", SingleValue("#f87171")))

	assert.Equal(t, []string{"red", "blue"}, p.Names())
	assert.Equal(t, 2, p.Len())

	v, ok := p.Get("red")
	require.True(t, ok)
	single, _ := v.Single()
	assert.Equal(t, "#f87171", single)

	_, ok = p.Get("green")
	assert.False(t, ok)
}

func TestNamedPaletteMergeReportsOverwrites(t *testing.T) {
	t.Parallel()

	var base NamedPalette
	base.Set("red", SingleValue("#f00"))
	base.Set("blue", SingleValue("#00f"))

	var other NamedPalette
	other.Set("green", SingleValue("#0f0"))
	other.Set("red", SingleValue("#000"))

	var overwritten []string
	base.Merge(other, func(name string) { overwritten = append(overwritten, name) })

	assert.Equal(t, []string{"red", "blue", "green"}, base.Names())
	assert.Equal(t, []string{"red"}, overwritten)

	v, _ := base.Get("red")
	single, _ := v.Single()
	assert.Equal(t, "#000", single)

	base.Merge(other, nil)
	assert.Equal(t, 3, base.Len())
}

func TestNamedPaletteCloneIsIndependent(t *testing.T) {
	t.Parallel()

	var p NamedPalette
	p.Set("red", SingleValue("#f00"))

	clone := p.Clone()
	clone.Set("red", SingleValue("#000"))
	clone.Set("blue", SingleValue("#00f"))

	v, _ := p.Get("red")
	single, _ := v.Single()
	assert.Equal(t, "#f00", single)
	assert.Equal(t, 1, p.Len())
}

func TestNamedPaletteStepCount(t *testing.T) {
	t.Parallel()

	var p NamedPalette
	p.Set("red", ShadesValue(NewShadePalette(map[Step]string{50: "#fef2f2", 500: "#ef4444", 950: "#450a0a"})))
	p.Set("white", SingleValue("#fff"))

	assert.Equal(t, 4, p.StepCount())
	assert.Equal(t, 0, NamedPalette{}.StepCount())
}

func TestNamedPaletteJSONKeepsOrder(t *testing.T) {
	t.Parallel()

	var p NamedPalette
	p.Set("zinc", ShadesValue(NewShadePalette(map[Step]string{500: "#71717a", 50: "#fafafa"})))
	p.Set("accent", SingleValue("#ff00ff"))
	p.Set("amber", ShadesValue(NewShadePalette(map[Step]string{400: "#fbbf24"})))

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"zinc":{"50":"#fafafa","500":"#71717a"},"accent":"#ff00ff","amber":{"400":"#fbbf24"}}`, string(data))

	var decoded NamedPalette
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"zinc", "accent", "amber"}, decoded.Names())
	assert.Equal(t, p.Entries(), decoded.Entries())

	assert.Error(t, json.Unmarshal([]byte(`["red"]`), &decoded))
}

func TestNamedPaletteYAML(t *testing.T) {
	t.Parallel()

	doc := `
zinc:
  50: "#fafafa"
  500: "#71717a"
accent: "#ff00ff"
amber:
  400: "#fbbf24"
`
	var p NamedPalette
	require.NoError(t, yaml.Unmarshal([]byte(doc), &p))
	assert.Equal(t, []string{"zinc", "accent", "amber"}, p.Names())

	v, _ := p.Get("zinc")
	shades, ok := v.Shades()
	require.True(t, ok)
	assert.Equal(t, []Step{50, 500}, shades.Steps())

	data, err := yaml.Marshal(p)
	require.NoError(t, err)

	var decoded NamedPalette
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, p.Entries(), decoded.Entries())
}

func TestNamedPaletteYAMLRejectsSequences(t *testing.T) {
	t.Parallel()

	var p NamedPalette
	err := yaml.Unmarshal([]byte("red:\n  - \"#f00\"\n"), &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `palette "red"`)

	err = yaml.Unmarshal([]byte("- red\n"), &p)
	assert.Error(t, err)
}
