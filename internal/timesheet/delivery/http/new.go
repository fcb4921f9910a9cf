package http

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"timesheet-assistant/internal/timesheet"
	pkgLog "timesheet-assistant/pkg/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Handler exposes the web form and the JSON API of the timesheet domain.
type Handler interface {
	Index(c *gin.Context)
	Submit(c *gin.Context)
	Download(c *gin.Context)

	Parse(c *gin.Context)
	Generate(c *gin.Context)
	Chat(c *gin.Context)
}

type handler struct {
	l    pkgLog.Logger
	uc   timesheet.UseCase
	tmpl *template.Template
	md   goldmark.Markdown
}

// New creates a new timesheet HTTP handler.
func New(l pkgLog.Logger, uc timesheet.UseCase) Handler {
	return &handler{
		l:    l,
		uc:   uc,
		tmpl: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
		md:   goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}
