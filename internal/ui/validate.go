// internal/ui/validate.go
package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wheel-overlay/internal/config"
)

var (
	ErrInvalidNumber     = errors.New("Please enter a valid number.")
	ErrSizeOutOfRange    = fmt.Errorf("Please enter a value between %d and %d.", config.MinSize, config.MaxSize)
	ErrOpacityOutOfRange = fmt.Errorf("Please enter a value between 0 and %d.", config.MaxOpacity)
)

// ParseSize проверяет поле размера окна. Пустое поле оставляет текущее значение.
func ParseSize(text string, current int) (int, error) {
	return parseBounded(text, current, config.MinSize, config.MaxSize, ErrSizeOutOfRange)
}

// ParseOpacity проверяет поле прозрачности. Пустое поле оставляет текущее значение.
func ParseOpacity(text string, current int) (int, error) {
	return parseBounded(text, current, 0, config.MaxOpacity, ErrOpacityOutOfRange)
}

func parseBounded(text string, current, lo, hi int, rangeErr error) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return current, nil
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return current, ErrInvalidNumber
	}
	if v < lo || v > hi {
		return current, rangeErr
	}
	return v, nil
}
