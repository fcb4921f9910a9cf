package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-assistant/pkg/taskparser"
)

func TestDecodeEntries(t *testing.T) {
	want := []taskparser.Entry{{Task: "Fixed bug", Hours: 3, Date: "2024-04-30"}}

	tests := []struct {
		name  string
		reply string
	}{
		{"plain", `[{"date":"2024-04-30","task":"Fixed bug","hours":3}]`},
		{"fenced", "```json\n[{\"date\":\"2024-04-30\",\"task\":\" Fixed bug \",\"hours\":3}]\n```"},
		{"surrounded", "Here you go:\n[{\"date\":\"2024-04-30\",\"task\":\"Fixed bug\",\"hours\":3}]\nDone."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeEntries(tt.reply)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeEntries_Rejects(t *testing.T) {
	_, err := DecodeEntries("The time in London is 10:30 AM.")
	assert.ErrorIs(t, err, ErrNotEntryList)

	_, err = DecodeEntries(`[{"task": "x", "hours": "lots"}]`)
	assert.ErrorIs(t, err, ErrNotEntryList)

	_, err = DecodeEntries("[]")
	assert.ErrorIs(t, err, ErrNoEntries)
}
