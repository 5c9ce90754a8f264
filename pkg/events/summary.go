package events

import (
	"fmt"
	"strings"
)

type Summary struct {
	Warnings []Event

	Full []Event
}

func (s Summary) String() string {
	if len(s.Warnings) == 0 {
		return "no warnings"
	}

	lines := make([]string, len(s.Warnings))
	for i, w := range s.Warnings {
		prefix := "- "
		if w.Step != "" {
			prefix += "[" + w.Step + "] "
		}
		if w.Error != nil {
			lines[i] = fmt.Sprintf("%s%s (%s)", prefix, w.Message, w.Error.Error())
		} else {
			lines[i] = prefix + w.Message
		}
	}

	return fmt.Sprintf("Warnings (%d):\n%s", len(s.Warnings), strings.Join(lines, "\n"))
}
