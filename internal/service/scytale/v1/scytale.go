// Package scytale provides the Scytale transposition cipher.
//
// The text is written row by row onto a grid and read back column by column.
// Encoding strips every space from the message, pads it with spaces up to a
// multiple of step and reads it with a stride of ceil(len/step). Decoding reads
// the cipher text with a stride of step and trims the trailing padding.
package scytale

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/danilovkiri/dk_go_scytale/internal/config"
	serviceErrors "github.com/danilovkiri/dk_go_scytale/internal/service/errors"
	"github.com/danilovkiri/dk_go_scytale/internal/service/scytale"
)

// PadRune fills the last grid row during encoding.
const PadRune = ' '

// MaxPadding caps the number of PadRune appended by Encode.
const MaxPadding = 1 << 20

// Check interface implementation explicitly
var (
	_ scytale.Transposer = (*Scytale)(nil)
)

// Scytale defines object structure and its attributes.
type Scytale struct {
	strict bool
}

// NewScytaleService initializes a cipher service. A nil config yields strict decoding.
func NewScytaleService(c *config.CipherConfig) *Scytale {
	if c == nil {
		return &Scytale{strict: true}
	}
	return &Scytale{strict: c.Strict}
}

// Strict reports whether Decode rejects cipher text whose length is not a multiple of step.
func (s *Scytale) Strict() bool {
	return s.strict
}

// Encode transposes message using step columns. The message must be valid UTF-8.
func (s *Scytale) Encode(message string, step int) (string, error) {
	if err := validateStep(step); err != nil {
		return "", err
	}
	if err := validateEncoding(message); err != nil {
		return "", err
	}
	cleaned := []rune(strings.ReplaceAll(message, " ", ""))
	length := len(cleaned)
	if length == 0 {
		return "", nil
	}
	// a step above length yields a single pass padded up to step runes
	if step-length > MaxPadding {
		return "", &serviceErrors.StepTooLargeError{Length: length, Step: step}
	}
	passes := (length-1)/step + 1
	// uneven division corrupts the transposition, so the grid is always full
	for padding := passes*step - length; padding > 0; padding-- {
		cleaned = append(cleaned, PadRune)
	}
	return string(interleave(cleaned, passes)), nil
}

// Decode restores the text transposed by Encode with the same step.
// The cipher text must be valid UTF-8.
//
// In lenient mode a cipher text whose length is not a multiple of step is read
// with uneven columns: every rune is kept but the order is not meaningful.
func (s *Scytale) Decode(cipherText string, step int) (string, error) {
	if err := validateStep(step); err != nil {
		return "", err
	}
	if err := validateEncoding(cipherText); err != nil {
		return "", err
	}
	runes := []rune(cipherText)
	if s.strict && len(runes)%step != 0 {
		return "", &serviceErrors.MalformedCipherLengthError{Length: len(runes), Step: step}
	}
	return strings.TrimRightFunc(string(interleave(runes, step)), isTrailingSpace), nil
}

func validateStep(step int) error {
	if step <= 0 {
		return &serviceErrors.InvalidStepError{Step: step}
	}
	return nil
}

func validateEncoding(text string) error {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			return &serviceErrors.InvalidEncodingError{Offset: i}
		}
		i += size
	}
	return nil
}

// isTrailingSpace extends unicode.IsSpace with the information separators U+001C..U+001F.
func isTrailingSpace(r rune) bool {
	return unicode.IsSpace(r) || r >= '\x1c' && r <= '\x1f'
}

// interleave concatenates the stride subsequences text[i::stride] for i in [0, stride).
func interleave(text []rune, stride int) []rune {
	output := make([]rune, 0, len(text))
	for i := 0; i < stride && i < len(text); i++ {
		for j := i; j < len(text); j += stride {
			output = append(output, text[j])
		}
	}
	return output
}
