package schemarules_test

import (
	"testing"

	sr "github.com/Gobd/schemarules"
	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDefinitionsSurfacePatterns(t *testing.T) {
	pd, ok := sr.IsEmail.(sr.PatternDefinition)
	require.True(t, ok)
	assert.Equal(t, govalidator.Email, pd.Pattern())

	pd, ok = sr.IsUUID.(sr.PatternDefinition)
	require.True(t, ok)
	assert.Equal(t, govalidator.UUID, pd.Pattern())

	pd, ok = sr.IsAlphanumeric.(sr.PatternDefinition)
	require.True(t, ok)
	assert.Equal(t, govalidator.Alphanumeric, pd.Pattern())
}

func TestIsEmailValidates(t *testing.T) {
	rule := sr.IsEmail.(validation.Rule)
	assert.NoError(t, rule.Validate("user@example.com"))
	assert.Error(t, rule.Validate("not-an-email"))
	assert.Error(t, rule.Validate(123))
}

func TestFormatDefinitionsSkipEmpty(t *testing.T) {
	rule := sr.IsEmail.(validation.Rule)
	assert.NoError(t, rule.Validate(""))
	assert.NoError(t, rule.Validate(nil))
}

func TestIsIntValidates(t *testing.T) {
	rule := sr.IsInt.(validation.Rule)
	assert.NoError(t, rule.Validate("42"))
	assert.NoError(t, rule.Validate("-7"))
	assert.Error(t, rule.Validate("4.2"))
}
