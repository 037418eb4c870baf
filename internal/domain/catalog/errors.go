package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownRepairChip неизвестная метка фильтра поиска
var ErrUnknownRepairChip = errors.New("unknown repair filter")

// UnknownRepairChipError ошибка с указанием метки
type UnknownRepairChipError struct {
	Label string
}

func (e *UnknownRepairChipError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownRepairChip, e.Label)
}

// Unwrap позволяет проверять через errors.Is
func (e *UnknownRepairChipError) Unwrap() error {
	return ErrUnknownRepairChip
}
