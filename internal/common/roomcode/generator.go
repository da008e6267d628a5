package roomcode

import "math/rand"

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/NachoLave/SushiLibre/internal/common/roomcode Generator

// Generator produces short shareable room codes
type Generator interface {
	NewCode() string
}

const codeLength = 5

// alphabet leaves out 0/O and 1/I so codes survive being read aloud
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// DefaultGenerator implements the Generator interface using math/rand
type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewCode returns a new uppercase room code
func (g *DefaultGenerator) NewCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}
