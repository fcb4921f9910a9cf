package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	"timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/excel"
	pkgLog "timesheet-assistant/pkg/log"
	"timesheet-assistant/pkg/pdf"
	"timesheet-assistant/pkg/taskparser"
)

const (
	ExcelFileName = "timesheet.xlsx"
	PDFFileName   = "timesheet.pdf"

	exitCommand = "exit"
	prompt      = "You: "

	msgBanner      = "AI Timesheet Chatbot with Excel/PDF Generation\nType 'exit' to quit.\n\n"
	msgExit        = "Exiting chatbot...\n"
	msgExportError = "Could not generate Excel/PDF. Ensure agent outputs valid JSON list of tasks.\n"
)

// Chatter is the part of the timesheet use case the terminal needs.
type Chatter interface {
	Chat(ctx context.Context, sc model.Scope, input timesheet.ChatInput) (timesheet.ChatOutput, error)
}

// Session is one terminal conversation. Entries decoded from agent replies
// accumulate across turns and every export rewrites the same two files.
type Session struct {
	l         pkgLog.Logger
	uc        Chatter
	repo      repository.FileRepository
	sheetName string
	id        string
	entries   []taskparser.Entry
}

// NewSession creates a Session writing files through repo.
func NewSession(l pkgLog.Logger, uc Chatter, repo repository.FileRepository, sheetName string) *Session {
	return &Session{
		l:         l,
		uc:        uc,
		repo:      repo,
		sheetName: sheetName,
		id:        uuid.NewString(),
	}
}

// Entries returns a copy of the cumulative entry list.
func (s *Session) Entries() []taskparser.Entry {
	out := make([]taskparser.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Run reads lines from in until "exit" (any case), EOF or ctx is done.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, msgBanner)

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, exitCommand) {
			fmt.Fprint(out, msgExit)
			return nil
		}
		if line == "" {
			continue
		}

		s.turn(ctx, line, out)
	}
}

func (s *Session) turn(ctx context.Context, line string, out io.Writer) {
	res, err := s.uc.Chat(ctx, model.Scope{SessionID: s.id, Source: model.SourceTerminal}, timesheet.ChatInput{Text: line})
	if err != nil {
		s.l.Errorf(ctx, "internal.timesheet.delivery.terminal.turn: %v", err)
		fmt.Fprintf(out, "\nError: %v\n\n", err)
		return
	}

	fmt.Fprintf(out, "\nAI:\n%s\n\n", res.Reply)

	if len(res.Entries) == 0 {
		fmt.Fprint(out, msgExportError)
		return
	}
	for _, is := range res.Issues {
		fmt.Fprintf(out, "Warning: %s\n", is.Error())
	}

	s.entries = append(s.entries, res.Entries...)
	if err := s.export(ctx, out); err != nil {
		s.l.Errorf(ctx, "internal.timesheet.delivery.terminal.export: %v", err)
		fmt.Fprint(out, msgExportError)
	}
}

func (s *Session) export(ctx context.Context, out io.Writer) error {
	xlsx, err := excel.Render(s.entries, excel.Options{SheetName: s.sheetName})
	if err != nil {
		return err
	}
	f, err := s.repo.Save(ctx, repository.SaveFileOptions{Name: ExcelFileName, Format: model.FormatXLSX, Data: xlsx})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Excel saved as %s\n", f.Path)

	doc, err := pdf.Render(s.entries)
	if err != nil {
		return err
	}
	f, err = s.repo.Save(ctx, repository.SaveFileOptions{Name: PDFFileName, Format: model.FormatPDF, Data: doc})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "PDF saved as %s\n", f.Path)
	return nil
}
