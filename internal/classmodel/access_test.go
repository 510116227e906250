package classmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseAccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Access
	}{
		{"public", AccPublic},
		{" Static ", AccStatic},
		{"super", AccSuper},
		{"synchronized", AccSynchronized},
		{"bridge", AccBridge},
		{"varargs", AccVarargs},
		{"strictfp", AccStrict},
		{"enum", AccEnum},
		{"0x21", AccPublic | AccSuper},
		{"33", AccPublic | AccSuper},
		{"0", 0},
	}

	for _, tt := range tests {
		got, err := ParseAccess(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseAccess("sealed")
	assert.Error(t, err)

	_, err = ParseAccess("0x10000")
	assert.Error(t, err)
}

func TestAccessString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", Access(0).String())
	assert.Equal(t, "public static final", (AccPublic | AccStatic | AccFinal).String())
	assert.Equal(t, "public synchronized interface abstract", Access(0x621).String())
	assert.True(t, Access(0x1041).Has(AccBridge|AccSynthetic))
	assert.False(t, Access(0x1041).Has(AccPrivate))
}

func TestAccessYAML(t *testing.T) {
	t.Parallel()

	var holder struct {
		A Access `yaml:"a"`
		B Access `yaml:"b"`
		C Access `yaml:"c"`
		D Access `yaml:"d"`
	}

	err := yaml.Unmarshal([]byte("a: [public, final]\nb: 0x4031\nc: private\nd:\n"), &holder)
	require.NoError(t, err)
	assert.Equal(t, AccPublic|AccFinal, holder.A)
	assert.Equal(t, AccPublic|AccFinal|AccSuper|AccEnum, holder.B)
	assert.Equal(t, AccPrivate, holder.C)
	assert.Equal(t, Access(0), holder.D)

	out, err := yaml.Marshal(struct {
		A Access `yaml:"a"`
	}{AccPublic | AccStatic})
	require.NoError(t, err)
	assert.Equal(t, "a:\n    - public\n    - static\n", string(out))

	err = yaml.Unmarshal([]byte("a: [public, sealed]\n"), &holder)
	assert.ErrorContains(t, err, "sealed")

	err = yaml.Unmarshal([]byte("a: {public: true}\n"), &holder)
	assert.Error(t, err)
}
