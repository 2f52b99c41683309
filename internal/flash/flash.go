// Package flash carries one-time notifications across a redirect.
//
// A Message is an ordinary value returned next to the redirect target; the
// HTTP layer stores it in a short-lived cookie and the next rendered page
// reads and clears it.
package flash

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Message struct {
	Level Level
	Text  string
}

func Success(text string) *Message {
	return &Message{Level: LevelSuccess, Text: text}
}

func Error(text string) *Message {
	return &Message{Level: LevelError, Text: text}
}

func (m Message) encode() string {
	values := url.Values{}
	values.Set("level", string(m.Level))
	values.Set("text", m.Text)

	return values.Encode()
}

func decode(raw string) (*Message, bool) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, false
	}

	level := Level(values.Get("level"))
	if level != LevelSuccess && level != LevelError {
		return nil, false
	}

	return &Message{Level: level, Text: values.Get("text")}, true
}

// Store hands messages from one request to the next through a cookie.
type Store struct {
	CookieName string
	MaxAge     int
}

func NewStore(cookieName string, maxAge int) *Store {
	return &Store{CookieName: cookieName, MaxAge: maxAge}
}

func (s *Store) Set(ctx *gin.Context, m Message) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(s.CookieName, m.encode(), s.MaxAge, "/", "", false, true)
}

// Pop returns the pending message, if any, and clears it.
func (s *Store) Pop(ctx *gin.Context) *Message {
	raw, err := ctx.Cookie(s.CookieName)
	if err != nil {
		return nil
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(s.CookieName, "", -1, "/", "", false, true)

	m, ok := decode(raw)
	if !ok {
		return nil
	}

	return m
}
