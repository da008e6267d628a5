package roomcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCode(t *testing.T) {
	g := New()

	for i := 0; i < 100; i++ {
		code := g.NewCode()
		assert.Len(t, code, 5)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q in code %s", r, code)
		}
	}
}
