package crt

// TableFull - Custom error to inform that every slot of a probing table is occupied by other keys
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// InvalidSize - Custom error to inform that a table was requested with a non positive size
type InvalidSize struct {
	msg string
}

// Error - Used to notify that a table size is not valid
func (E InvalidSize) Error() string {
	if E.msg == "" {
		return "table size must be a positive value higher than 0 (zero)"
	}
	return E.msg
}
