package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Err())

	d.AddWarning("duplicate_field", "declared twice", "a.B", "x")
	d.AddInfo("note", "just saying", "", "")
	assert.False(t, d.HasErrors())

	d.AddError("empty_name", "field name is empty", "a.B", "fields[0]")
	d.AddError("empty_class_name", "class name is empty", "", "")
	require.True(t, d.HasErrors())

	err := d.Err()
	require.Error(t, err)
	assert.Equal(t, "[a.B] fields[0]: [empty_name] field name is empty; [empty_class_name] class name is empty", err.Error())

	var other Diagnostics
	other.AddWarning("w", "second", "", "")
	d.Merge(other)
	assert.Len(t, d.Warnings, 2)
	assert.Len(t, d.Infos, 1)
	assert.Len(t, d.Errors, 2)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}

func TestDiagnosticString(t *testing.T) {
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "m: [c] msg", Diagnostic{Code: "c", Message: "msg", Member: "m"}.String())
}
