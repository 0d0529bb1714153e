package utils

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

func ToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case uuid.UUID:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func ToUUID(value string) (uuid.UUID, error) {
	return uuid.Parse(value)
}

func ToNumberWithDefault(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func ToFloatWithDefault(value string, fallback float64) float64 {
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}
