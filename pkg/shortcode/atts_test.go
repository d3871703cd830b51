package shortcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAtts(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantNamed      map[string]string
		wantPositional []string
	}{
		{
			name:      "empty",
			input:     "",
			wantNamed: map[string]string{},
		},
		{
			name:      "mixed quoting",
			input:     ` id="l1" name='My Layer' control=true`,
			wantNamed: map[string]string{"id": "l1", "name": "My Layer", "control": "true"},
		},
		{
			name:      "keys are lowercased",
			input:     `ID="x" Latitude=1.5`,
			wantNamed: map[string]string{"id": "x", "latitude": "1.5"},
		},
		{
			name:      "whitespace around equals",
			input:     `id = "x"`,
			wantNamed: map[string]string{"id": "x"},
		},
		{
			name:      "empty quoted value",
			input:     `name=""`,
			wantNamed: map[string]string{"name": ""},
		},
		{
			name:           "positional values",
			input:          `control "quoted flag" bare`,
			wantNamed:      map[string]string{},
			wantPositional: []string{"control", "quoted flag", "bare"},
		},
		{
			name:           "unclosed quote falls back to positional",
			input:          `name="abc`,
			wantNamed:      map[string]string{},
			wantPositional: []string{`name="abc`},
		},
		{
			name:           "quote inside unquoted value",
			input:          `a=b"c`,
			wantNamed:      map[string]string{},
			wantPositional: []string{`a=b"c`},
		},
		{
			name:      "non-breaking and zero-width spaces",
			input:     "id=a\u00a0name=b\u200bzoom=3",
			wantNamed: map[string]string{"id": "a", "name": "b", "zoom": "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			atts := ParseAtts(tt.input)
			assert.Equal(t, tt.wantNamed, atts.Named)
			assert.Equal(t, tt.wantPositional, atts.Positional)
		})
	}
}

func TestNormalizeQuotes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"curly double quotes", `id=&#8220;l1&#8221;`, `id="l1"`},
		{"primes", `id=&Prime;l1&#8243;`, `id="l1"`},
		{"curly single quotes", `name=&#8217;x&#8242;`, `name='x'`},
		{"guillemet after nbsp", `id=&#8220;l1&nbsp;&raquo;`, `id="l1"`},
		{"numeric guillemet", `id=&#187;l1&#187;`, `id="l1"`},
		{"quot entity", `id=&quot;l1&quot;`, `id="l1"`},
		{"plain text untouched", `id="l1"`, `id="l1"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeQuotes(tt.input))
		})
	}
}

func TestNormalizeQuotes_ThenParse(t *testing.T) {
	atts := ParseAtts(NormalizeQuotes(`id=&#8220;l1&#8221; name=&#8220;My Layer&#8221;`))
	assert.Equal(t, "l1", atts.Named["id"])
	assert.Equal(t, "My Layer", atts.Named["name"])
}

func TestAtts_Merge(t *testing.T) {
	atts := ParseAtts(`id="l1" extra=x`)
	merged := atts.Merge(map[string]string{"id": "layer", "name": "", "control": "false"})

	assert.Equal(t, map[string]string{
		"id":      "l1",
		"name":    "",
		"control": "false",
		"extra":   "x",
	}, merged.Named)

	// original left untouched
	assert.NotContains(t, atts.Named, "control")
}

func TestAtts_GetAndFlag(t *testing.T) {
	atts := ParseAtts(`id=a Control`)

	v, ok := atts.Get("ID")
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = atts.Get("name")
	assert.False(t, ok)

	assert.True(t, atts.Flag("control"))
	assert.False(t, atts.Flag("marker"))
}

func TestToBoolean(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{" yes ", true},
		{"1", true},
		{"on", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToBoolean(tt.input))
		})
	}
}
