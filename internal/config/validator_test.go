package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	shadeserrors "github.com/alexisbeaulieu97/shades/pkg/errors"
)

func TestValidateDocument(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		doc       string
		wantField string
		wantMsg   string
	}{
		{
			name: "primary and single are exclusive",
			doc: `version: "1.0"
palettes:
  - name: red
    primary: "#f87171"
    single: "#ffffff"
`,
			wantField: "palettes[0].primary",
			wantMsg:   "excluded_with",
		},
		{
			name: "one of primary or single is required",
			doc: `version: "1.0"
palettes:
  - name: red
`,
			wantField: "palettes[0].primary",
			wantMsg:   "required_without",
		},
		{
			name: "primary must be a colour",
			doc: `version: "1.0"
palettes:
  - name: red
    primary: "#zzzzzz"
`,
			wantField: "palettes[0].primary",
			wantMsg:   "not a valid color",
		},
		{
			name: "palette names must be identifiers",
			doc: `version: "1.0"
palettes:
  - name: "brand red"
    primary: "#f87171"
`,
			wantField: "palettes[0].name",
			wantMsg:   "palette_name",
		},
		{
			name: "unknown type",
			doc: `version: "1.0"
palettes:
  - name: red
    primary: "#f87171"
    type: gradient
`,
			wantField: "palettes[0].type",
			wantMsg:   "oneof",
		},
		{
			name: "single values take no type",
			doc: `version: "1.0"
palettes:
  - name: white
    single: "#ffffff"
    type: alpha
`,
			wantField: "palettes[0].type",
			wantMsg:   "single value",
		},
		{
			name: "unknown system",
			doc: `version: "1.0"
options:
  system: material
palettes:
  - name: red
    primary: "#f87171"
`,
			wantField: "options.system",
			wantMsg:   "oneof",
		},
		{
			name: "unknown output",
			doc: `version: "1.0"
output: pdf
palettes:
  - name: red
    primary: "#f87171"
`,
			wantField: "output",
			wantMsg:   "oneof",
		},
		{
			name: "fragment names must be identifiers",
			doc: `version: "1.0"
fragments:
  - "9lives": "#000000"
`,
			wantField: "fragments[0]",
			wantMsg:   "9lives",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var doc Document
			require.NoError(t, yaml.Unmarshal([]byte(tc.doc), &doc))

			err := ValidateDocument(&doc)
			require.Error(t, err)

			var validationErr *shadeserrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.wantField, validationErr.Field)
			require.Contains(t, validationErr.Message, tc.wantMsg)
		})
	}
}

func TestValidateDocumentAcceptsFragmentsOnly(t *testing.T) {
	t.Parallel()

	doc, err := Parse("inline", []byte(`version: "2.1.0"
fragments:
  - ink: "#111827"
`))
	require.NoError(t, err)
	require.Len(t, doc.Fragments, 1)
}

func TestValidateDocumentNil(t *testing.T) {
	t.Parallel()

	err := ValidateDocument(nil)
	require.Error(t, err)
}
