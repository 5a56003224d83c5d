package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.AmericanEnglish)

	assert.Equal("plain", From("plain"))
	assert.Equal("value 7 at 0x10", From("value %v at %#x", 7, 16))
}
