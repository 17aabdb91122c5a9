package difficulty

import "strings"

// repairState tracks where the repair scanner is inside the raw text.
type repairState int

const (
	// stateNormal copies lines through unchanged.
	stateNormal repairState = iota
	// stateMultiline drops continuation lines of a broken Description value.
	stateMultiline
)

// Repair fixes the one known authoring defect in difficulty files: a
// Description value whose free-form text spans multiple raw lines without
// escaped newlines. The opening line is closed with a synthetic quote and
// comma, the stray continuation lines are dropped, and the first line that
// starts a new field resumes normal copying.
//
// Text without the defect passes through byte for byte, so running Repair
// on already-repaired text is a no-op. This is not a general JSON repair
// facility; any other malformation still fails at parse time.
func Repair(text string) string {
	var b strings.Builder
	state := stateNormal

	for _, line := range strings.SplitAfter(text, "\n") {
		trimmed := strings.TrimSpace(line)

		switch state {
		case stateNormal:
			if opensBrokenDescription(trimmed) {
				state = stateMultiline
				b.WriteString(trimmed)
				// Close the value on its own line. Gluing the next kept
				// line onto this one would recreate the trigger pattern
				// and break idempotence.
				b.WriteString("\",\n")
				continue
			}
			b.WriteString(line)

		case stateMultiline:
			if closesBrokenDescription(trimmed) {
				state = stateNormal
				b.WriteString(line)
			}
		}
	}

	return b.String()
}

// opensBrokenDescription reports whether a trimmed line starts a Description
// value that is never closed on the same line.
func opensBrokenDescription(trimmed string) bool {
	return strings.HasPrefix(trimmed, `"Description`) && !strings.HasSuffix(trimmed, `",`)
}

// closesBrokenDescription reports whether a trimmed line ends the dropped
// span: a line opening a new quoted field rather than continuing the text.
// The bare closing token `",` belongs to the broken value and does not end
// the span.
func closesBrokenDescription(trimmed string) bool {
	return strings.HasPrefix(trimmed, `"`) && trimmed != `",`
}
