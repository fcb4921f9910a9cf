package excel_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"timesheet-assistant/pkg/excel"
	"timesheet-assistant/pkg/taskparser"
)

func TestRender(t *testing.T) {
	entries := []taskparser.Entry{
		{Task: "Fixed bug", Hours: 3, Date: "2024-04-30"},
		{Task: "Standup", Hours: 8, Date: "2024-05-01"},
	}

	data, err := excel.Render(entries, excel.Options{})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() {
		_ = file.Close()
	}()

	assert.Equal(t, []string{excel.DefaultSheetName}, file.GetSheetList())

	rows, err := file.GetRows(excel.DefaultSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Task", "Hours"}, rows[0])
	assert.Equal(t, []string{"2024-04-30", "Fixed bug", "3"}, rows[1])
	assert.Equal(t, []string{"2024-05-01", "Standup", "8"}, rows[2])

	styleID, err := file.GetCellStyle(excel.DefaultSheetName, "B1")
	require.NoError(t, err)
	style, err := file.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
}

func TestRender_CustomSheetAndEmpty(t *testing.T) {
	data, err := excel.Render(nil, excel.Options{SheetName: "Week 18"})
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() {
		_ = file.Close()
	}()

	rows, err := file.GetRows("Week 18")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, excel.Header, rows[0])
}
