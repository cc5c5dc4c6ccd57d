package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for unclassified failures.
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnterminatedString Code = 1001
	LexInvalidEscape      Code = 1002
	LexBadDispatch        Code = 1003

	// Reader
	SynInfo             Code = 2000
	SynUnterminatedForm Code = 2001
	SynUnexpectedCloser Code = 2002
	SynInvalidSugar     Code = 2003

	// IO
	IoInfo        Code = 4000
	IoReadFailed  Code = 4001
	IoWriteFailed Code = 4002

	// Project configuration
	ProjInfo      Code = 5000
	ProjBadConfig Code = 5001
	ProjBadTheme  Code = 5002
	ProjBadRule   Code = 5003
)

// codeDescription doubles as the error "kind" shown by the CLI, so the
// titles stay lowercase and terse.
var codeDescription = map[Code]string{
	UnknownCode:           "unknown error",
	LexInfo:               "lexical information",
	LexUnterminatedString: "unterminated string",
	LexInvalidEscape:      "invalid escape",
	LexBadDispatch:        "invalid sugar",
	SynInfo:               "reader information",
	SynUnterminatedForm:   "unterminated form",
	SynUnexpectedCloser:   "unexpected closer",
	SynInvalidSugar:       "invalid sugar",
	IoInfo:                "io information",
	IoReadFailed:          "cannot read file",
	IoWriteFailed:         "cannot write file",
	ProjInfo:              "project information",
	ProjBadConfig:         "invalid config",
	ProjBadTheme:          "invalid theme",
	ProjBadRule:           "invalid layout rule",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
