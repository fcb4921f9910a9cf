package pdf_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-assistant/pkg/pdf"
	"timesheet-assistant/pkg/taskparser"
)

func TestRender(t *testing.T) {
	entries := []taskparser.Entry{
		{Task: "Fixed bug", Hours: 3, Date: "2024-04-30"},
		{Task: strings.Repeat("Very long task label ", 20), Hours: 8, Date: "2024-05-01"},
		{Task: "Café planning", Hours: 1, Date: "2024-05-01"},
	}

	data, err := pdf.Render(entries)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.True(t, bytes.Contains(data, []byte("%%EOF")))
}

func TestRender_Empty(t *testing.T) {
	data, err := pdf.Render(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
