package decode

import (
	"fmt"
)

type OptionError struct {
	Option string
	Position
}

func (e OptionError) Error() string {
	return fmt.Sprintf("%s: option %s not recognized", e.Position, e.Option)
}

type DecodeError struct {
	Message string
	Position
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}
