package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"timesheet-assistant/internal/middleware"
	"timesheet-assistant/internal/model"
)

// processSubmitReq binds and validates the web form. The bound request is
// returned even on error so the form can be re-rendered.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, model.Scope, error) {
	var req submitReq
	sc := model.Scope{SessionID: middleware.SessionID(c), Source: model.SourceWeb}
	if err := c.ShouldBind(&req); err != nil {
		return req, sc, errInvalidForm
	}
	return req, sc, req.validate()
}

func (h *handler) processParseReq(c *gin.Context) (parseReq, model.Scope, error) {
	var req parseReq
	sc := model.Scope{Source: model.SourceAPI}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, errInvalidBody
	}
	return req, sc, nil
}

func (h *handler) processGenerateReq(c *gin.Context) (generateReq, model.Scope, error) {
	var req generateReq
	sc := model.Scope{Source: model.SourceAPI}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, errInvalidBody
	}
	return req, sc, req.validate()
}

// processChatReq binds the chat body. A missing session id starts a new session.
func (h *handler) processChatReq(c *gin.Context) (chatReq, model.Scope, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, errInvalidBody
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	return req, model.Scope{SessionID: req.SessionID, Source: model.SourceAPI}, nil
}
