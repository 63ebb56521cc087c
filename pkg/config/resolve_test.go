package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/textswap/pkg/text"
)

func TestResolveDictionary(t *testing.T) {
	one := &Config{Dictionaries: []Dictionary{
		{Name: "only_one", Pairs: []Pair{{Key: "a", Value: "b"}}},
	}}
	two := &Config{Dictionaries: []Dictionary{
		{Name: "first", Pairs: []Pair{{Key: "a", Value: "b"}}},
		{Name: "second", Pairs: []Pair{{Key: "c", Value: "d"}}},
	}}

	tests := []struct {
		name        string
		cfg         *Config
		request     string
		want        string
		wantErrIs   error
		errContains string
	}{
		{name: "auto_select_single", cfg: one, want: "only_one"},
		{name: "explicit_single", cfg: one, request: "only_one", want: "only_one"},
		{name: "explicit_among_many", cfg: two, request: "second", want: "second"},
		{
			name:        "ambiguous",
			cfg:         two,
			wantErrIs:   ErrAmbiguousDictionary,
			errContains: "available: first, second",
		},
		{
			name:        "unknown_name",
			cfg:         two,
			request:     "third",
			wantErrIs:   ErrInvalidConfig,
			errContains: `dictionary "third" not found`,
		},
		{
			name:        "no_dictionaries",
			cfg:         &Config{},
			wantErrIs:   ErrInvalidConfig,
			errContains: "no dictionaries defined",
		},
		{
			name:        "no_dictionaries_with_name",
			cfg:         &Config{},
			request:     "any",
			wantErrIs:   ErrInvalidConfig,
			errContains: "no dictionaries defined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.cfg.ResolveDictionary(tt.request)
			if tt.wantErrIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrIs)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Name)
		})
	}
}

func TestDictionaryRules(t *testing.T) {
	d := &Dictionary{Name: "d", Pairs: []Pair{
		{Key: "hello", Value: "X"},
		{Key: "hello world", Value: "Y"},
	}}

	forward, err := d.Rules(text.KeysToValues)
	require.NoError(t, err)
	assert.Equal(t, []text.Rule{
		{Find: "hello", Replace: "X"},
		{Find: "hello world", Replace: "Y"},
	}, forward)

	backward, err := d.Rules(text.ValuesToKeys)
	require.NoError(t, err)
	assert.Equal(t, []text.Rule{
		{Find: "X", Replace: "hello"},
		{Find: "Y", Replace: "hello world"},
	}, backward)

	_, err = d.Rules(text.Direction(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, text.ErrInvalidDirection)
}

func TestDictionaryRules_EmptyFind(t *testing.T) {
	d := &Dictionary{Name: "strip", Pairs: []Pair{{Key: "this ", Value: ""}}}

	// deleting is fine going forward
	rules, err := d.Rules(text.KeysToValues)
	require.NoError(t, err)
	assert.Equal(t, []text.Rule{{Find: "this ", Replace: ""}}, rules)

	// but the empty value cannot be searched for going back
	_, err = d.Rules(text.ValuesToKeys)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, text.ErrEmptyPattern)
	assert.Contains(t, err.Error(), `dictionary "strip"`)

	empty := &Dictionary{Name: "bad", Pairs: []Pair{{Key: "", Value: "x"}}}
	_, err = empty.Rules(text.KeysToValues)
	assert.ErrorIs(t, err, text.ErrEmptyPattern)
}

func TestDictionaryRules_SharedValueFirstKeyWins(t *testing.T) {
	d := &Dictionary{Name: "aliases", Pairs: []Pair{
		{Key: "colour", Value: "color"},
		{Key: "tint", Value: "color"},
	}}

	rules, err := d.Rules(text.ValuesToKeys)
	require.NoError(t, err)
	assert.Equal(t, []text.Rule{
		{Find: "color", Replace: "colour"},
		{Find: "color", Replace: "tint"},
	}, rules)

	got, count := text.Fold("a color and a color", rules)
	assert.Equal(t, "a colour and a colour", got)
	assert.Equal(t, 2, count)
}
