package manifest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/funcy"
)

const yamlDoc = `
name: release-notes
placeholders:
  - name: version
    value: "2.1.0"
  - name: channel
    map:
      stable: Stable Channel
      beta: Beta Channel
  - name: shout
    builtin: upper
`

const tomlDoc = `
name = "release-notes"

[[placeholders]]
name = "version"
value = "2.1.0"

[[placeholders]]
name = "channel"

[placeholders.map]
stable = "Stable Channel"
beta = "Beta Channel"

[[placeholders]]
name = "shout"
builtin = "upper"
`

func TestParse_YAML(t *testing.T) {
	m, err := Parse([]byte(yamlDoc))
	require.NoError(t, err)

	assert.Equal(t, "release-notes", m.Name)
	require.Len(t, m.Placeholders, 3)
	require.NotNil(t, m.Placeholders[0].Value)
	assert.Equal(t, "2.1.0", *m.Placeholders[0].Value)
	assert.Equal(t, "Beta Channel", m.Placeholders[1].Map["beta"])
	assert.Equal(t, "upper", m.Placeholders[2].Builtin)
}

func TestParse_TOML(t *testing.T) {
	m, err := ParseTOML([]byte(tomlDoc))
	require.NoError(t, err)

	assert.Equal(t, "release-notes", m.Name)
	require.Len(t, m.Placeholders, 3)
	require.NotNil(t, m.Placeholders[0].Value)
	assert.Equal(t, "2.1.0", *m.Placeholders[0].Value)
	assert.Equal(t, "Stable Channel", m.Placeholders[1].Map["stable"])
	assert.Equal(t, "upper", m.Placeholders[2].Builtin)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("placeholders: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse manifest")
}

func TestValidate(t *testing.T) {
	value := "v"

	tests := []struct {
		name     string
		manifest Manifest
		wantErr  error
	}{
		{
			name: "valid",
			manifest: Manifest{Placeholders: []Placeholder{
				{Name: "a", Value: &value},
			}},
		},
		{
			name: "empty value is still a source",
			manifest: Manifest{Placeholders: []Placeholder{
				{Name: "a", Value: new(string)},
			}},
		},
		{
			name: "invalid name",
			manifest: Manifest{Placeholders: []Placeholder{
				{Name: "has space", Value: &value},
			}},
			wantErr: ErrInvalidName,
		},
		{
			name: "empty name",
			manifest: Manifest{Placeholders: []Placeholder{
				{Value: &value},
			}},
			wantErr: ErrInvalidName,
		},
		{
			name: "duplicate name",
			manifest: Manifest{Placeholders: []Placeholder{
				{Name: "a", Value: &value},
				{Name: "a", Builtin: "echo"},
			}},
			wantErr: ErrDuplicateName,
		},
		{
			name: "no source",
			manifest: Manifest{Placeholders: []Placeholder{
				{Name: "a"},
			}},
			wantErr: ErrNoSource,
		},
		{
			name: "two sources",
			manifest: Manifest{Placeholders: []Placeholder{
				{Name: "a", Value: &value, Builtin: "echo"},
			}},
			wantErr: ErrNoSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.manifest.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHandlers(t *testing.T) {
	m, err := Parse([]byte(yamlDoc))
	require.NoError(t, err)

	handlers, err := m.Handlers()
	require.NoError(t, err)
	require.Len(t, handlers, 3)

	r := funcy.WithTemplate("v<!$ version> (<!$ channel beta>) <!$ shout go>")
	r.AppendHandlers(handlers)

	out, err := r.Render()
	require.NoError(t, err)
	assert.Equal(t, "v2.1.0 (Beta Channel) GO", out)
}

func TestHandlers_UnknownBuiltin(t *testing.T) {
	m := &Manifest{Placeholders: []Placeholder{
		{Name: "x", Builtin: "never-heard-of-it"},
	}}

	_, err := m.Handlers()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownBuiltin)
	assert.Contains(t, err.Error(), "never-heard-of-it")
}

func TestHandlers_FreshStatePerCompile(t *testing.T) {
	doc := []byte("placeholders:\n  - name: n\n    builtin: counter\n")
	m, err := Parse(doc)
	require.NoError(t, err)

	render := func() string {
		handlers, err := m.Handlers()
		require.NoError(t, err)
		r := funcy.WithTemplate("<!$ n> <!$ n>")
		r.SetHandlers(handlers)
		out, err := r.Render()
		require.NoError(t, err)
		return out
	}

	assert.Equal(t, "1 2", render())
	assert.Equal(t, "1 2", render())
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok, "schema has no properties: %s", data)
	assert.Contains(t, props, "placeholders")
	assert.Contains(t, props, "name")
}
