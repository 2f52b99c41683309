package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietanh2810/icecream-api/internal/flash"
)

// Page is one handler of the flavour route table.
type Page func(ctx context.Context, req Request) (Result, error)

// Handler adapts pages to gin: it builds the Request, renders or redirects
// according to the Result and moves flash messages through the cookie store.
type Handler struct {
	flashes *flash.Store
}

func NewHandler(flashes *flash.Store) *Handler {
	return &Handler{
		flashes: flashes,
	}
}

// MountFlavourPages registers the flavour route table. Every route answers
// GET and POST; the page tells display from submit by the method.
func (h *Handler) MountFlavourPages(r gin.IRoutes, pages *FlavourPages) {
	routes := []struct {
		path string
		page Page
	}{
		{"/flavour/", pages.List},
		{"/flavour/add/", pages.Add},
		{"/flavour/:id/", pages.Edit},
		{"/flavour/:id/delete/", pages.Delete},
	}

	for _, route := range routes {
		r.GET(route.path, h.Serve(route.page))
		r.POST(route.path, h.Serve(route.page))
	}
}

func (h *Handler) Serve(page Page) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		req := Request{
			Submit: ctx.Request.Method == http.MethodPost,
			ID:     ctx.Param("id"),
		}
		if req.Submit {
			if err := ctx.Request.ParseForm(); err != nil {
				h.renderError(ctx, http.StatusBadRequest)
				return
			}
			req.Values = ctx.Request.PostForm
		}

		res, err := page(ctx.Request.Context(), req)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				h.renderError(ctx, http.StatusNotFound)
				return
			}

			zap.L().Error("failed to serve page",
				zap.String("method", ctx.Request.Method),
				zap.String("path", ctx.Request.URL.Path),
				zap.String("request_id", requestid.Get(ctx)),
				zap.Error(err))
			h.renderError(ctx, http.StatusInternalServerError)
			return
		}

		if res.Redirect != "" {
			if res.Flash != nil {
				h.flashes.Set(ctx, *res.Flash)
			}
			ctx.Redirect(res.Status, res.Redirect)
			return
		}

		data := gin.H{}
		for k, v := range res.Data {
			data[k] = v
		}
		data["messages"] = h.messages(ctx, res.Flash)

		ctx.HTML(res.Status, res.Template, data)
	}
}

// messages consumes the pending flash and appends the inline notice.
func (h *Handler) messages(ctx *gin.Context, inline *flash.Message) []flash.Message {
	var messages []flash.Message
	if pending := h.flashes.Pop(ctx); pending != nil {
		messages = append(messages, *pending)
	}
	if inline != nil {
		messages = append(messages, *inline)
	}

	return messages
}

func (h *Handler) renderError(ctx *gin.Context, status int) {
	ctx.HTML(status, "error.html", gin.H{
		"title":  http.StatusText(status),
		"status": status,
	})
}
