package service

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
)

// AllowedChars задает URL-безопасный алфавит коротких кодов
const AllowedChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

// CodeGenerator генерирует случайные короткие коды фиксированной длины
type CodeGenerator struct {
	mutex  sync.Mutex
	random *rand.Rand
	length int
}

// NewCodeGenerator создает генератор кодов указанной длины,
// засеянный от криптографического источника
func NewCodeGenerator(length int) *CodeGenerator {
	var seed [8]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// Без crypto/rand система неработоспособна; запасного источника нет
		panic("failed to seed code generator: " + err.Error())
	}

	return &CodeGenerator{
		random: rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(seed[:])))),
		length: length,
	}
}

// GenerateCode генерирует случайный код
func (g *CodeGenerator) GenerateCode() string {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	result := make([]byte, g.length)
	for i := range result {
		result[i] = AllowedChars[g.random.Intn(len(AllowedChars))]
	}

	return string(result)
}
