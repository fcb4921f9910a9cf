package http

import (
	"html/template"
	"net/url"
	"strings"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	"timesheet-assistant/pkg/response"
	"timesheet-assistant/pkg/taskparser"
)

const (
	ActionChat      = "chat"
	ActionTimesheet = "timesheet"

	downloadPath = "/download/"
)

// --- Web form ---

type submitReq struct {
	UserInput  string `form:"user_input"`
	Action     string `form:"action"`
	IncludePDF bool   `form:"include_pdf"`
}

func (r submitReq) validate() error {
	if r.Action != ActionChat && r.Action != ActionTimesheet {
		return errInvalidAction
	}
	if strings.TrimSpace(r.UserInput) == "" {
		return timesheet.ErrEmptyInput
	}
	return nil
}

func (r submitReq) formats() []model.Format {
	if r.IncludePDF {
		return []model.Format{model.FormatXLSX, model.FormatPDF}
	}
	return []model.Format{model.FormatXLSX}
}

type fileLink struct {
	Name   string
	Format string
	URL    string
}

type page struct {
	Input      string
	IncludePDF bool
	Error      string
	Reply      template.HTML
	Entries    []taskparser.Entry
	Warnings   []string
	Files      []fileLink
	SheetRange string
}

func newPage(req submitReq) page {
	return page{Input: req.UserInput, IncludePDF: req.IncludePDF}
}

func warnings(issues []taskparser.Issue) []string {
	if len(issues) == 0 {
		return nil
	}
	out := make([]string, 0, len(issues))
	for _, is := range issues {
		out = append(out, is.Error())
	}
	return out
}

func downloadURL(name string) string {
	return downloadPath + url.PathEscape(name)
}

func fileLinks(files []model.File) []fileLink {
	out := make([]fileLink, 0, len(files))
	for _, f := range files {
		out = append(out, fileLink{Name: f.Name, Format: string(f.Format), URL: downloadURL(f.Name)})
	}
	return out
}

// --- JSON API ---

type entryReq struct {
	Task  string `json:"task"`
	Hours int    `json:"hours"`
	Date  string `json:"date"`
}

type parseReq struct {
	Text string `json:"text" binding:"required"`
}

func (r parseReq) toInput() timesheet.ParseInput {
	return timesheet.ParseInput{Text: r.Text}
}

type generateReq struct {
	Text    string     `json:"text"`
	Entries []entryReq `json:"entries"`
	Formats []string   `json:"formats"`
}

func (r generateReq) validate() error {
	if strings.TrimSpace(r.Text) == "" && len(r.Entries) == 0 {
		return timesheet.ErrEmptyInput
	}
	for _, f := range r.Formats {
		if !model.Format(strings.ToLower(f)).Valid() {
			return timesheet.ErrUnsupportedFormat
		}
	}
	return nil
}

func (r generateReq) toInput() timesheet.GenerateInput {
	in := timesheet.GenerateInput{Text: r.Text}
	for _, e := range r.Entries {
		in.Entries = append(in.Entries, taskparser.Entry{Task: e.Task, Hours: e.Hours, Date: e.Date})
	}
	for _, f := range r.Formats {
		in.Formats = append(in.Formats, model.Format(strings.ToLower(f)))
	}
	return in
}

type chatReq struct {
	Text      string `json:"text" binding:"required"`
	SessionID string `json:"session_id"`
}

func (r chatReq) toInput() timesheet.ChatInput {
	return timesheet.ChatInput{Text: r.Text}
}

type entryResp struct {
	Task  string `json:"task"`
	Hours int    `json:"hours"`
	Date  string `json:"date"`
}

type issueResp struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

type fileResp struct {
	Name        string            `json:"name"`
	Format      string            `json:"format"`
	Size        int64             `json:"size"`
	DownloadURL string            `json:"download_url"`
	CreatedAt   response.DateTime `json:"created_at"`
}

type parseResp struct {
	Entries []entryResp `json:"entries"`
	Issues  []issueResp `json:"issues,omitempty"`
}

type generateResp struct {
	Entries    []entryResp `json:"entries"`
	Issues     []issueResp `json:"issues,omitempty"`
	Files      []fileResp  `json:"files"`
	SheetRange string      `json:"sheet_range,omitempty"`
}

type chatResp struct {
	SessionID string      `json:"session_id"`
	Reply     string      `json:"reply"`
	Entries   []entryResp `json:"entries,omitempty"`
	Issues    []issueResp `json:"issues,omitempty"`
}

func newEntriesResp(entries []taskparser.Entry) []entryResp {
	out := make([]entryResp, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryResp{Task: e.Task, Hours: e.Hours, Date: e.Date})
	}
	return out
}

func newIssuesResp(issues []taskparser.Issue) []issueResp {
	if len(issues) == 0 {
		return nil
	}
	out := make([]issueResp, 0, len(issues))
	for _, is := range issues {
		out = append(out, issueResp{Index: is.Index, Message: is.Message})
	}
	return out
}

func (h *handler) newParseResp(o timesheet.ParseOutput) parseResp {
	return parseResp{Entries: newEntriesResp(o.Entries), Issues: newIssuesResp(o.Issues)}
}

func (h *handler) newGenerateResp(o timesheet.GenerateOutput) generateResp {
	files := make([]fileResp, 0, len(o.Files))
	for _, f := range o.Files {
		files = append(files, fileResp{
			Name:        f.Name,
			Format:      string(f.Format),
			Size:        f.Size,
			DownloadURL: downloadURL(f.Name),
			CreatedAt:   response.DateTime(f.CreatedAt),
		})
	}
	return generateResp{
		Entries:    newEntriesResp(o.Entries),
		Issues:     newIssuesResp(o.Issues),
		Files:      files,
		SheetRange: o.SheetRange,
	}
}

func (h *handler) newChatResp(sessionID string, o timesheet.ChatOutput) chatResp {
	resp := chatResp{SessionID: sessionID, Reply: o.Reply, Issues: newIssuesResp(o.Issues)}
	if len(o.Entries) > 0 {
		resp.Entries = newEntriesResp(o.Entries)
	}
	return resp
}
