// Package prompt reads and validates line-based operator input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrEOF is returned once the input stream is exhausted.
	ErrEOF = errors.New("input closed")
	// ErrNotANumber is returned when an integer field fails to parse.
	ErrNotANumber = errors.New("not a number")
)

// Prompter writes labels to Out and reads answers line by line.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Line prints the label and returns the next line, trimmed.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrEOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Int prints the label and parses the answer as a base-10 integer.
func (p *Prompter) Int(label string) (int, error) {
	text, err := p.Line(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, ErrNotANumber
	}
	return n, nil
}

// ValidateName rejects empty names.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("Name cannot be empty")
	}
	return nil
}

// ValidateAge rejects non-positive ages.
func ValidateAge(age int) error {
	if age <= 0 {
		return errors.New("Age must be a positive number")
	}
	return nil
}

// ValidateIQ rejects non-positive IQ values.
func ValidateIQ(iq int) error {
	if iq <= 0 {
		return errors.New("IQ must be a positive number")
	}
	return nil
}

// ValidateBenchPress rejects negative weights.
func ValidateBenchPress(kg int) error {
	if kg < 0 {
		return errors.New("Bench press cannot be negative")
	}
	return nil
}
