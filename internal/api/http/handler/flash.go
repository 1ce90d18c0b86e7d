package handler

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/dtroode/storefront/internal/logger"
)

const flashSessionName = "storefront-flash"

func init() {
	gob.Register(FlashMessage{})
}

// FlashMessage is a one-shot message shown on the next rendered page.
type FlashMessage struct {
	Type    string
	Message string
}

// Flash keeps flash messages in a signed cookie session.
type Flash struct {
	store  sessions.Store
	logger *logger.Logger
}

// NewFlash creates a Flash backed by store.
func NewFlash(store sessions.Store, logger *logger.Logger) *Flash {
	return &Flash{store: store, logger: logger}
}

func (f *Flash) add(w http.ResponseWriter, r *http.Request, kind, message string) {
	session, err := f.store.Get(r, flashSessionName)
	if err != nil {
		f.logger.Debug("Flash: discarding unreadable session", "error", err.Error())
	}
	session.Options.Path = "/"
	session.Options.HttpOnly = true
	session.AddFlash(FlashMessage{Type: kind, Message: message})
	if err := session.Save(r, w); err != nil {
		f.logger.Error("Flash: failed to save session", "error", err.Error())
	}
}

func (f *Flash) pop(w http.ResponseWriter, r *http.Request) []FlashMessage {
	session, err := f.store.Get(r, flashSessionName)
	if err != nil {
		return nil
	}

	var messages []FlashMessage
	for _, v := range session.Flashes() {
		if fm, ok := v.(FlashMessage); ok {
			messages = append(messages, fm)
		}
	}
	if len(messages) > 0 {
		if err := session.Save(r, w); err != nil {
			f.logger.Error("Flash: failed to save session", "error", err.Error())
		}
	}
	return messages
}
