// Package errors provides custom errors for types implementing Transposer interface.
package errors

import (
	"fmt"
)

type (
	InvalidStepError struct {
		Step int
	}
	MalformedCipherLengthError struct {
		Length int
		Step   int
	}
	StepTooLargeError struct {
		Length int
		Step   int
	}
	InvalidEncodingError struct {
		Offset int
	}
)

func (e *InvalidStepError) Error() string {
	return fmt.Sprintf("invalid step %d: step must be a positive integer", e.Step)
}

func (e *MalformedCipherLengthError) Error() string {
	return fmt.Sprintf("cipher text length %d is not a multiple of step %d", e.Length, e.Step)
}

func (e *StepTooLargeError) Error() string {
	return fmt.Sprintf("step %d is too large to pad a message of %d characters", e.Step, e.Length)
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence at byte %d", e.Offset)
}
