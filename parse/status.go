package parse

// Status is the state of the parser after a construct returns.
type Status uint8

const (
	// NoError means scanning continues.
	NoError Status = iota
	// Error means the input is malformed: a required closing brace or
	// bracket is missing, or a block tag is unknown.
	Error
	// Exit means the current construct finished cleanly.
	Exit
	// EndOfCell means an & ended an array cell.
	EndOfCell
	// EndOfRow means a \\ ended an array row.
	EndOfRow
	// EndOfBlock means \end was read.
	EndOfBlock
)

var statusNames = [...]string{
	NoError:    "NOERROR",
	Error:      "ERROR",
	Exit:       "EXIT",
	EndOfCell:  "ENDOFCELL",
	EndOfRow:   "ENDOFROW",
	EndOfBlock: "ENDOFBLOCK",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "UNKNOWN"
}
