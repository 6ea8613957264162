package sqlbind_test

import (
	"testing"

	"github.com/leporo/sqlbind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestUnmarshalYAML(t *testing.T) {
	doc := `
params:
  - 42
  - -1.5
  - true
  - null
  - ~
  - Jack
  - "7"
  - !skip
  - [1, x]
  - name: Jack
    email: null
    age: 30
  - &a 5
  - *a
`
	var req struct {
		Params sqlbind.Values `yaml:"params"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(doc), &req))

	expected := sqlbind.Values{
		sqlbind.Int(42),
		sqlbind.Float(-1.5),
		sqlbind.Bool(true),
		sqlbind.Null(),
		sqlbind.Null(),
		sqlbind.Text("Jack"),
		sqlbind.Text("7"),
		sqlbind.Skip(),
		sqlbind.List(sqlbind.Int(1), sqlbind.Text("x")),
		sqlbind.Assoc(
			sqlbind.Pair{Key: "name", Value: sqlbind.Text("Jack")},
			sqlbind.Pair{Key: "email", Value: sqlbind.Null()},
			sqlbind.Pair{Key: "age", Value: sqlbind.Int(30)},
		),
		sqlbind.Int(5),
		sqlbind.Int(5),
	}
	assert.Equal(t, expected, req.Params)
}

func TestUnmarshalYAMLRender(t *testing.T) {
	doc := `
template: "UPDATE users SET ?a WHERE id = ?d{ AND block = ?d}"
params:
  - {name: Jack, email: null}
  - 1
  - !skip
`
	var req struct {
		Template string         `yaml:"template"`
		Params   sqlbind.Values `yaml:"params"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(doc), &req))

	sql, err := sqlbind.Render(req.Template, req.Params.Args()...)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET `name` = 'Jack', `email` = NULL WHERE id = 1", sql)
}

func TestUnmarshalYAMLErrors(t *testing.T) {
	var v sqlbind.Value
	err := yaml.Unmarshal([]byte("? [a, b]\n: 1\n"), &v)
	assert.Error(t, err)

	err = yaml.Unmarshal([]byte("!!int abc"), &v)
	assert.Error(t, err)

	var params sqlbind.Values
	err = yaml.Unmarshal([]byte("a: 1\n"), &params)
	assert.ErrorContains(t, err, "parameters must be a sequence")
}

func TestUnmarshalYAMLKeepsNulls(t *testing.T) {
	var params sqlbind.Values
	require.NoError(t, yaml.Unmarshal([]byte("[null, x, ~, 1]"), &params))
	assert.Equal(t, sqlbind.Values{sqlbind.Null(), sqlbind.Text("x"), sqlbind.Null(), sqlbind.Int(1)}, params)

	sql, err := sqlbind.Render("UPDATE t SET a = ?d, b = ? , c = ?f, d = ?", params.Args()...)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE t SET a = NULL, b = 'x' , c = NULL, d = 1", sql)
}
