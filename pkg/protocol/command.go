package protocol

import "strconv"

// Verb identifies a protocol command.
type Verb string

const (
	VerbInit Verb = "INIT"
	VerbPut  Verb = "PUT"
	VerbGet  Verb = "GET"
	VerbSize Verb = "SIZE"
)

// Command is a single parsed request line. Only the fields relevant to the
// verb are populated.
type Command struct {
	Verb     Verb
	Key      string
	Value    string
	Capacity int
}

// Parse turns one non-blank, whitespace-trimmed line into a Command.
// A PUT value is the remainder of the line after the key, so values may
// contain spaces.
func Parse(line string) (Command, error) {
	fields := splitFields(line, 3)

	switch Verb(fields[0]) {
	case VerbInit:
		if len(fields) < 2 {
			return Command{}, &MissingArgumentError{Verb: VerbInit}
		}
		capacity, err := strconv.Atoi(fields[1])
		if err != nil {
			return Command{}, &InvalidCapacityError{Reason: err.Error()}
		}
		if capacity < 1 {
			return Command{}, &InvalidCapacityError{Reason: "must be positive"}
		}
		return Command{Verb: VerbInit, Capacity: capacity}, nil

	case VerbPut:
		if len(fields) < 3 {
			return Command{}, &MissingArgumentError{Verb: VerbPut}
		}
		return Command{Verb: VerbPut, Key: fields[1], Value: fields[2]}, nil

	case VerbGet:
		if len(fields) < 2 {
			return Command{}, &MissingArgumentError{Verb: VerbGet}
		}
		return Command{Verb: VerbGet, Key: fields[1]}, nil

	case VerbSize:
		return Command{Verb: VerbSize}, nil

	default:
		return Command{}, &UnknownCommandError{Token: fields[0]}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// splitFields splits on runs of spaces and tabs into at most max fields; the
// final field keeps the rest of the line verbatim apart from leading
// whitespace. The input is assumed trimmed and non-empty, so the result has
// at least one field.
func splitFields(line string, max int) []string {
	fields := make([]string, 0, max)
	i := 0
	for len(fields) < max-1 {
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		if i == len(line) {
			return fields
		}
		start := i
		for i < len(line) && !isSpace(line[i]) {
			i++
		}
		fields = append(fields, line[start:i])
	}
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	if i < len(line) {
		fields = append(fields, line[i:])
	}
	return fields
}
