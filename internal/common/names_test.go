package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameForms(t *testing.T) {
	assert.Equal(t, "java.lang.String", DottedName("java/lang/String"))
	assert.Equal(t, "java.lang.String", DottedName("java.lang.String"))
	assert.Equal(t, "java/lang/String", InternalName("java.lang.String"))
	assert.Equal(t, "Object", InternalName("Object"))

	assert.True(t, IsQualified("pkg.Class"))
	assert.True(t, IsQualified("pkg/Class"))
	assert.False(t, IsQualified("Class"))

	assert.Equal(t, "Class", SimpleName("pkg/sub/Class"))
	assert.Equal(t, "Inner$1", SimpleName("pkg.Outer.Inner$1"))
	assert.Equal(t, "Class", SimpleName("Class"))
}
