package model

import (
	"errors"
	"fmt"
)

var (
	ErrInputClosed      = errors.New("input closed")
	ErrAlreadyDeposited = errors.New("deposit already made")
	ErrNegativeBalance  = errors.New("balance cannot be negative")
	ErrBalanceOverflow  = errors.New("balance overflow")
)

// ParseError ввод не удалось разобрать как целое число
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q is not a number", e.Field, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RangeError число разобрано, но вне допустимых границ [Min, Max]
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %d is out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// CheckRange возвращает *RangeError, если value вне [min, max]
func CheckRange(field string, value, min, max int) error {
	if value < min || value > max {
		return &RangeError{Field: field, Value: value, Min: min, Max: max}
	}
	return nil
}
