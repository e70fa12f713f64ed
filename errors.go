package pwscreen

import "fmt"

// UnknownHashFunction - Custom error to inform that a hash function name is not registered
type UnknownHashFunction struct {
	msg string
}

// Error - Used to notify that a hash function name is not known
func (E UnknownHashFunction) Error() string {
	if E.msg == "" {
		return "unknown hash function"
	}
	return E.msg
}

// Is - Matches any UnknownHashFunction regardless of message
func (E UnknownHashFunction) Is(target error) bool {
	_, ok := target.(UnknownHashFunction)
	return ok
}

func unknownHashFunction(name string) UnknownHashFunction {
	return UnknownHashFunction{msg: fmt.Sprintf("unknown hash function %q, use one of %v", name, HashFunctionNames())}
}
