package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kina524/sql-data-analyzy-app/internal/prompt"
)

func TestLineTrimsAndEchoesLabel(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("  Ann_Lee  \n"), &out)

	got, err := p.Line("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "Ann_Lee", got)
	assert.Equal(t, "Name: ", out.String())
}

func TestLineEOF(t *testing.T) {
	p := prompt.New(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Line("Name: ")
	assert.ErrorIs(t, err, prompt.ErrEOF)
}

func TestInt(t *testing.T) {
	p := prompt.New(strings.NewReader("42\nabc\n-7\n"), &bytes.Buffer{})

	n, err := p.Int("Age: ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = p.Int("Age: ")
	assert.ErrorIs(t, err, prompt.ErrNotANumber)

	n, err = p.Int("Age: ")
	require.NoError(t, err)
	assert.Equal(t, -7, n)
}

func TestValidators(t *testing.T) {
	assert.NoError(t, prompt.ValidateName("Ann_Lee"))
	assert.Error(t, prompt.ValidateName(""))

	assert.NoError(t, prompt.ValidateAge(1))
	assert.Error(t, prompt.ValidateAge(0))
	assert.Error(t, prompt.ValidateAge(-3))

	assert.NoError(t, prompt.ValidateIQ(1))
	assert.Error(t, prompt.ValidateIQ(0))

	assert.NoError(t, prompt.ValidateBenchPress(0))
	assert.NoError(t, prompt.ValidateBenchPress(200))
	assert.Error(t, prompt.ValidateBenchPress(-1))
}
