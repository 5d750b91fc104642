package wizard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, "HI", d.State, "state defaults to Hawaii")
	assert.Empty(t, d.StudentFirstName)
	assert.False(t, d.HasPreferredGrade())
	assert.False(t, d.HasSecondParent())
}

func TestSetFieldUnknownName(t *testing.T) {
	d := NewDraft()
	err := d.SetField("studentMiddleName", "x")
	var ufe *UnknownFieldError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, "studentMiddleName", ufe.Name)
}

func TestSetFieldCoversEveryField(t *testing.T) {
	d := NewDraft()
	for _, name := range FieldNames() {
		require.NoError(t, d.SetField(name, "v:"+name))
	}

	data, err := json.Marshal(d)
	require.NoError(t, err)
	var m map[string]string
	require.NoError(t, json.Unmarshal(data, &m))
	require.Len(t, m, len(FieldNames()))
	for _, name := range FieldNames() {
		assert.Equal(t, "v:"+name, m[name])
	}
}

func TestValidateStep(t *testing.T) {
	d := NewDraft()

	assert.False(t, ValidateStep(&d, 1))
	require.NoError(t, d.SetField("studentFirstName", "An"))
	require.NoError(t, d.SetField("studentLastName", "Nguyen"))
	assert.False(t, ValidateStep(&d, 1), "DOB still missing")
	require.NoError(t, d.SetField("studentDOB", "2015-03-01"))
	assert.True(t, ValidateStep(&d, 1))

	// preferredGrade is optional on step 1
	assert.Empty(t, d.PreferredGrade)

	// state has a default, so step 3 only needs the other three
	assert.False(t, ValidateStep(&d, 3))
	require.NoError(t, d.SetField("address", "123 Main St"))
	require.NoError(t, d.SetField("city", "Honolulu"))
	require.NoError(t, d.SetField("zipCode", "96814"))
	assert.True(t, ValidateStep(&d, 3))

	// step 5 never blocks
	assert.True(t, ValidateStep(&d, 5))
}
