package content

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() Table {
	return NewTable(
		Entry{"badge", "Flexible Pricing"},
		Entry{"plan1Price", "$299"},
		Entry{"plan2Price", "$799"},
		Entry{"plan3Price", "Custom"},
	)
}

func TestNewTableDuplicateKeyPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewTable(Entry{"a", "1"}, Entry{"a", "2"})
	})
}

func TestTableAccessors(t *testing.T) {
	tbl := testTable()
	assert.Equal(t, 4, tbl.Len())
	assert.Equal(t, []string{"badge", "plan1Price", "plan2Price", "plan3Price"}, tbl.Keys())
	assert.Equal(t, "$799", tbl.Get("plan2Price"))
	assert.Equal(t, "", tbl.Get("missing"))
	assert.True(t, tbl.Has("badge"))
	assert.False(t, tbl.Has("foo"))
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		override Override
		want     map[string]string
	}{
		{
			name:     "nil override",
			override: nil,
			want:     map[string]string{"badge": "Flexible Pricing", "plan1Price": "$299", "plan2Price": "$799", "plan3Price": "Custom"},
		},
		{
			name:     "single key",
			override: Override{"plan2Price": "$999"},
			want:     map[string]string{"badge": "Flexible Pricing", "plan1Price": "$299", "plan2Price": "$999", "plan3Price": "Custom"},
		},
		{
			name:     "empty string still overrides",
			override: Override{"badge": ""},
			want:     map[string]string{"badge": "", "plan1Price": "$299", "plan2Price": "$799", "plan3Price": "Custom"},
		},
		{
			name:     "unknown key ignored",
			override: Override{"foo": "bar"},
			want:     map[string]string{"badge": "Flexible Pricing", "plan1Price": "$299", "plan2Price": "$799", "plan3Price": "Custom"},
		},
		{
			name:     "malformed value accepted verbatim",
			override: Override{"plan1Price": "not a number"},
			want:     map[string]string{"badge": "Flexible Pricing", "plan1Price": "not a number", "plan2Price": "$799", "plan3Price": "Custom"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testTable().Merge(tt.override)
			if diff := cmp.Diff(map[string]string(got.Override()), tt.want); diff != "" {
				t.Errorf("Merge() mismatch (-got +want):\n%s", diff)
			}
			assert.Equal(t, testTable().Keys(), got.Keys(), "keyspace must be preserved")
		})
	}
}

func TestMergeProperties(t *testing.T) {
	tbl := testTable()
	o := Override{"plan1Price": "$1", "badge": "New", "extra": "x"}

	t.Run("identity on empty override", func(t *testing.T) {
		assert.True(t, tbl.Merge(Override{}).Equal(tbl))
	})
	t.Run("idempotent", func(t *testing.T) {
		once := tbl.Merge(o)
		assert.True(t, once.Merge(o).Equal(once))
	})
	t.Run("unknown keys equal empty override", func(t *testing.T) {
		assert.True(t, tbl.Merge(Override{"foo": "bar"}).Equal(tbl.Merge(Override{})))
	})
	t.Run("defaults untouched", func(t *testing.T) {
		_ = tbl.Merge(o)
		assert.Equal(t, "Flexible Pricing", tbl.Get("badge"))
	})
	t.Run("round trip through override", func(t *testing.T) {
		merged := tbl.Merge(o)
		assert.True(t, tbl.Merge(merged.Override()).Equal(merged))
	})
}

func TestOverrideUnknown(t *testing.T) {
	got := Override{"zeta": "1", "badge": "x", "alpha": "2"}.Unknown(testTable())
	assert.Equal(t, []string{"alpha", "zeta"}, got)
	assert.Empty(t, Override{"badge": "x"}.Unknown(testTable()))
}

func TestManifestValidate(t *testing.T) {
	tbl := testTable()

	var ok Manifest
	ok.Add("pricing", "badge", KindText, "Flexible Pricing")
	ok.Add("pricing", "plan1Price", KindText, "$299")
	ok.Add("footer", "badge", KindText, "other section")
	require.NoError(t, ok.Validate("pricing", tbl))

	var bad Manifest
	bad.Add("pricing", "badge", KindText, "a")
	bad.Add("pricing", "badge", KindText, "b")
	bad.Add("pricing", "plan9Price", KindText, "c")
	err := bad.Validate("pricing", tbl)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateTag))
	assert.True(t, errors.Is(err, ErrUnknownTag))
}

func TestManifestOverride(t *testing.T) {
	var m Manifest
	m.Add("pricing", "plan2Price", KindText, "$999")
	m.Add("about", "badge", KindText, "About Us")
	assert.Equal(t, Override{"plan2Price": "$999"}, m.Override("pricing"))
	assert.Equal(t, "data-editable-href", KindHref.Attribute())
	assert.Equal(t, "data-editable", KindText.Attribute())
}
