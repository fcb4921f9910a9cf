package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	pkgLog "timesheet-assistant/pkg/log"
	"timesheet-assistant/pkg/taskparser"
)

var webScope = model.Scope{SessionID: "s1", Source: model.SourceWeb}

func TestParse(t *testing.T) {
	uc, _ := newTestUseCase(t, "")

	out, err := uc.Parse(context.Background(), webScope, timesheet.ParseInput{Text: "fixed bug yesterday 3h, standup"})
	require.NoError(t, err)
	assert.Equal(t, []taskparser.Entry{
		{Task: "Fixed bug", Hours: 3, Date: "2024-04-30"},
		{Task: "Standup", Hours: 8, Date: "2024-05-01"},
	}, out.Entries)
	assert.Empty(t, out.Issues)

	_, err = uc.Parse(context.Background(), webScope, timesheet.ParseInput{Text: "   "})
	assert.ErrorIs(t, err, timesheet.ErrEmptyInput)

	_, err = uc.Parse(context.Background(), webScope, timesheet.ParseInput{Text: " , , "})
	assert.ErrorIs(t, err, timesheet.ErrNoEntries)
}

func TestParse_FlagsLongDays(t *testing.T) {
	uc, _ := newTestUseCase(t, "")

	out, err := uc.Parse(context.Background(), webScope, timesheet.ParseInput{Text: "hackathon 30h"})
	require.NoError(t, err)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, 30, out.Entries[0].Hours, "entry is kept as written")
	require.Len(t, out.Issues, 1)
	assert.Equal(t, 0, out.Issues[0].Index)
}

func TestGenerate(t *testing.T) {
	uc, d := newTestUseCase(t, "")

	out, err := uc.Generate(context.Background(), webScope, timesheet.GenerateInput{
		Text:    "wrote report friday 3h and filed taxes",
		Formats: []model.Format{model.FormatPDF, model.FormatXLSX, model.FormatPDF},
	})
	require.NoError(t, err)

	assert.Len(t, out.Entries, 2)
	require.Len(t, out.Files, 2)
	assert.Equal(t, model.FormatXLSX, out.Files[0].Format)
	assert.Equal(t, model.FormatPDF, out.Files[1].Format)
	assert.Empty(t, out.SheetRange)

	xlsx, ok := out.Spreadsheet()
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(xlsx.Name, "timesheet_"))
	assert.True(t, strings.HasSuffix(xlsx.Name, ".xlsx"))
	assert.Equal(t, strings.TrimSuffix(xlsx.Name, ".xlsx"), strings.TrimSuffix(out.Files[1].Name, ".pdf"))

	stored := d.repo.files[xlsx.Name]
	assert.True(t, strings.HasPrefix(string(stored.Data), "PK"), "xlsx is a zip container")
	assert.True(t, strings.HasPrefix(string(d.repo.files[out.Files[1].Name].Data), "%PDF-"))
}

func TestGenerate_FromEntries(t *testing.T) {
	uc, d := newTestUseCase(t, "sheet-1")
	entries := []taskparser.Entry{{Task: "Deploy", Hours: 2, Date: "2024-05-02"}}

	out, err := uc.Generate(context.Background(), webScope, timesheet.GenerateInput{Text: "ignored", Entries: entries})
	require.NoError(t, err)

	assert.Equal(t, entries, out.Entries)
	assert.Len(t, out.Files, 1)
	assert.Equal(t, "Timesheet!A2:C3", out.SheetRange)
	assert.Equal(t, "sheet-1", d.sheets.req.SpreadsheetID)
	assert.Equal(t, entries, d.sheets.req.Entries)
}

func TestGenerate_SheetsFailureIsNotFatal(t *testing.T) {
	uc, d := newTestUseCase(t, "sheet-1")
	d.sheets.err = errBoom

	out, err := uc.Generate(context.Background(), webScope, timesheet.GenerateInput{Text: "standup"})
	require.NoError(t, err)
	assert.Empty(t, out.SheetRange)
	assert.Len(t, out.Files, 1)
}

func TestGenerate_Errors(t *testing.T) {
	uc, d := newTestUseCase(t, "")

	_, err := uc.Generate(context.Background(), webScope, timesheet.GenerateInput{})
	assert.ErrorIs(t, err, timesheet.ErrEmptyInput)

	_, err = uc.Generate(context.Background(), webScope, timesheet.GenerateInput{Text: "standup", Formats: []model.Format{"docx"}})
	assert.ErrorIs(t, err, timesheet.ErrUnsupportedFormat)

	d.repo.err = errBoom
	_, err = uc.Generate(context.Background(), webScope, timesheet.GenerateInput{Text: "standup"})
	assert.ErrorIs(t, err, errBoom)
}

func TestChat(t *testing.T) {
	uc, d := newTestUseCase(t, "")

	d.agent.reply = "```json\n[{\"date\":\"2024-04-30\",\"task\":\"Fixed bug\",\"hours\":3}]\n```"
	out, err := uc.Chat(context.Background(), webScope, timesheet.ChatInput{Text: "fixed bug yesterday 3h"})
	require.NoError(t, err)
	assert.Equal(t, "s1", d.agent.sessionID)
	assert.Equal(t, []taskparser.Entry{{Task: "Fixed bug", Hours: 3, Date: "2024-04-30"}}, out.Entries)

	d.agent.reply = "It is **10:30 AM** in London."
	out, err = uc.Chat(context.Background(), webScope, timesheet.ChatInput{Text: "time in london?"})
	require.NoError(t, err)
	assert.Equal(t, "It is **10:30 AM** in London.", out.Reply)
	assert.Empty(t, out.Entries)

	d.agent.err = errBoom
	_, err = uc.Chat(context.Background(), webScope, timesheet.ChatInput{Text: "hi"})
	assert.ErrorIs(t, err, errBoom)

	_, err = uc.Chat(context.Background(), webScope, timesheet.ChatInput{Text: ""})
	assert.ErrorIs(t, err, timesheet.ErrEmptyInput)
}

func TestChat_NoAgent(t *testing.T) {
	uc := New(pkgLog.NewNop(), nil, &memRepo{}, nil, nil, Config{})

	_, err := uc.Chat(context.Background(), webScope, timesheet.ChatInput{Text: "hi"})
	assert.ErrorIs(t, err, timesheet.ErrAgentUnavailable)
}

func TestDownload(t *testing.T) {
	uc, d := newTestUseCase(t, "")

	out, err := uc.Generate(context.Background(), webScope, timesheet.GenerateInput{Text: "standup"})
	require.NoError(t, err)

	file, err := uc.Download(context.Background(), webScope, out.Files[0].Name)
	require.NoError(t, err)
	assert.Equal(t, out.Files[0].Name, file.Name)

	_, err = uc.Download(context.Background(), webScope, "timesheet_missing.xlsx")
	assert.ErrorIs(t, err, timesheet.ErrFileNotFound)

	_, err = uc.Download(context.Background(), webScope, "../etc/passwd")
	assert.ErrorIs(t, err, timesheet.ErrInvalidFileName)

	d.repo.err = errBoom
	_, err = uc.Download(context.Background(), webScope, out.Files[0].Name)
	assert.ErrorIs(t, err, errBoom)
}
