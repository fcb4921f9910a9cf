package http

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	"timesheet-assistant/pkg/response"
)

const indexTemplate = "index.html"

// Index renders the empty form.
func (h *handler) Index(c *gin.Context) {
	h.render(c, http.StatusOK, page{})
}

// Submit handles the form: action=timesheet builds a spreadsheet, action=chat asks the agent.
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSubmitReq(c)
	p := newPage(req)
	if err != nil {
		status, msg := h.mapError(err)
		p.Error = msg
		h.render(c, status, p)
		return
	}

	switch req.Action {
	case ActionTimesheet:
		out, err := h.uc.Generate(ctx, sc, timesheet.GenerateInput{Text: req.UserInput, Formats: req.formats()})
		if err != nil {
			h.l.Errorf(ctx, "internal.timesheet.delivery.http.Submit: uc.Generate: %v", err)
			status, msg := h.mapError(err)
			p.Error = msg
			h.render(c, status, p)
			return
		}
		p.Entries = out.Entries
		p.Warnings = warnings(out.Issues)
		p.Files = fileLinks(out.Files)
		p.SheetRange = out.SheetRange

	case ActionChat:
		out, err := h.uc.Chat(ctx, sc, timesheet.ChatInput{Text: req.UserInput})
		if err != nil {
			h.l.Errorf(ctx, "internal.timesheet.delivery.http.Submit: uc.Chat: %v", err)
			status, msg := h.mapError(err)
			p.Error = msg
			h.render(c, status, p)
			return
		}
		p.Reply = h.markdown(c, out.Reply)
		p.Entries = out.Entries
		p.Warnings = warnings(out.Issues)
	}

	h.render(c, http.StatusOK, p)
}

// Download godoc
// @Summary     Download a generated timesheet
// @Description Streams a previously generated xlsx or pdf file as an attachment.
// @Tags        Timesheet
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce     application/pdf
// @Param       filename path string true "File name, e.g. timesheet_<uuid>.xlsx"
// @Success     200
// @Failure     400 {object} response.Resp "Invalid file name"
// @Failure     404 {object} response.Resp "File not found"
// @Router      /download/{filename} [GET]
func (h *handler) Download(c *gin.Context) {
	ctx := c.Request.Context()

	file, err := h.uc.Download(ctx, model.Scope{Source: model.SourceWeb}, c.Param("filename"))
	if err != nil {
		h.abortJSON(c, err)
		return
	}

	c.Header("Content-Type", file.Format.ContentType())
	c.FileAttachment(file.Path, file.Name)
}

// Parse godoc
// @Summary     Parse free text into timesheet entries
// @Description Splits the text into tasks and extracts task, hours and date for each.
// @Tags        Timesheet
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Free text"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timesheet/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processParseReq(c)
	if err != nil {
		h.abortJSON(c, err)
		return
	}

	out, err := h.uc.Parse(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.timesheet.delivery.http.Parse: uc.Parse: %v", err)
		h.abortJSON(c, err)
		return
	}

	response.OK(c, h.newParseResp(out))
}

// Generate godoc
// @Summary     Generate timesheet files
// @Description Parses the text (or takes the given entries), validates them and renders xlsx and optionally pdf.
// @Tags        Timesheet
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Text or entries, plus formats (xlsx, pdf)"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timesheet/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGenerateReq(c)
	if err != nil {
		h.abortJSON(c, err)
		return
	}

	out, err := h.uc.Generate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.timesheet.delivery.http.Generate: uc.Generate: %v", err)
		h.abortJSON(c, err)
		return
	}

	response.OK(c, h.newGenerateResp(out))
}

// Chat godoc
// @Summary     Talk to the timesheet agent
// @Description Sends one turn to the agent. Reuse session_id to keep the conversation history.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and optional session id"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Agent not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processChatReq(c)
	if err != nil {
		h.abortJSON(c, err)
		return
	}

	out, err := h.uc.Chat(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.timesheet.delivery.http.Chat: uc.Chat: %v", err)
		h.abortJSON(c, err)
		return
	}

	response.OK(c, h.newChatResp(sc.SessionID, out))
}

func (h *handler) render(c *gin.Context, status int, p page) {
	c.Render(status, render.HTML{Template: h.tmpl, Name: indexTemplate, Data: p})
}

// markdown converts the agent reply to HTML. Raw HTML in the reply is dropped
// by goldmark, so the result is safe to embed.
func (h *handler) markdown(c *gin.Context, src string) template.HTML {
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(src), &buf); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.timesheet.delivery.http.markdown: %v", err)
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
