package difficulty

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepair_PassthroughWhenClean(t *testing.T) {
	clean := "{\n  \"Name\": \"Clean Diff\",\n  \"Description\": \"one line\",\n  \"Pools\": {}\n}\n"
	assert.Equal(t, clean, Repair(clean))
}

func TestRepair_ClosesBrokenDescription(t *testing.T) {
	broken := "{\n" +
		"  \"Name\": \"Broken Diff\",\n" +
		"  \"Description\": \"first line of free text\n" +
		"continues here without quotes\n" +
		"and here too\n" +
		"\",\n" +
		"  \"Pools\": {}\n" +
		"}\n"

	repaired := Repair(broken)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(repaired), &doc), "repaired text must be valid JSON")
	assert.Equal(t, "Broken Diff", doc["Name"])
	assert.Equal(t, "first line of free text", doc["Description"])
	assert.Contains(t, doc, "Pools", "field after the broken span must survive")
}

func TestRepair_BareClosingTokenDoesNotEndSpan(t *testing.T) {
	// The lone `",` line belongs to the broken value; only a line opening a
	// new field resumes copying.
	broken := "{\n" +
		"\"Description\": \"broken\n" +
		"stray text\n" +
		"\",\n" +
		"\"Name\": \"After\"\n" +
		"}\n"

	repaired := Repair(broken)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(repaired), &doc))
	assert.Equal(t, "After", doc["Name"])
}

func TestRepair_Idempotent(t *testing.T) {
	broken := "{\n" +
		"  \"Description\": \"spans\n" +
		"multiple lines\n" +
		"  \"Name\": \"Idem\"\n" +
		"}\n"

	once := Repair(broken)
	twice := Repair(once)
	assert.Equal(t, once, twice)
}

func TestRepair_IntactDescriptionLineUntouched(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"closed value", "  \"Description\": \"fine\",\n"},
		{"unrelated field", "  \"Describe\": \"not a trigger prefix?\",\n"},
		{"no description at all", "  \"Rarity\": 5,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.line, Repair(tt.line))
		})
	}
}
