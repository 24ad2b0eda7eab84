package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCodeGenerator_Length проверяет длину генерируемых кодов
func TestCodeGenerator_Length(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{
			name:   "Default length 7",
			length: 7,
		},
		{
			name:   "Length 1",
			length: 1,
		},
		{
			name:   "Length 20",
			length: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			generator := NewCodeGenerator(tt.length)

			// Act
			code := generator.GenerateCode()

			// Assert
			assert.Len(t, code, tt.length)
		})
	}
}

// TestCodeGenerator_Alphabet проверяет, что коды состоят только из
// разрешенных URL-безопасных символов
func TestCodeGenerator_Alphabet(t *testing.T) {
	// Arrange
	generator := NewCodeGenerator(7)

	for i := 0; i < 100; i++ {
		// Act
		code := generator.GenerateCode()

		// Assert
		for _, char := range code {
			assert.True(t, strings.ContainsRune(AllowedChars, char),
				"Code contains invalid character: %c", char)
		}
	}
}

// TestCodeGenerator_Concurrent проверяет, что генератор безопасен
// при конкурентных вызовах
func TestCodeGenerator_Concurrent(t *testing.T) {
	// Arrange
	generator := NewCodeGenerator(7)

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				code := generator.GenerateCode()
				if len(code) != 7 {
					t.Errorf("unexpected code length: %d", len(code))
					return
				}
			}
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
