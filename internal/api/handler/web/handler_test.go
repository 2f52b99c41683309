package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/icecream-api/internal/flash"
	"github.com/vietanh2810/icecream-api/internal/service"
)

const testCookie = "flash"

func newRouter(t *testing.T) (*gin.Engine, *memoryFlavours) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newMemoryFlavours()
	r := gin.New()
	r.SetHTMLTemplate(Templates())
	NewHandler(flash.NewStore(testCookie, 60)).
		MountFlavourPages(r, NewFlavourPages(service.NewFlavourService(repo, nil, nil)))

	return r, repo
}

func do(r http.Handler, method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func flashCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	require.Fail(t, "no flash cookie in response")

	return nil
}

func TestHandler_AddRedirectsWithFlash(t *testing.T) {
	r, repo := newRouter(t)

	w := do(r, http.MethodPost, "/flavour/add/", values("Vanilla", "10.5", "3.50"))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, ListPath, w.Header().Get("Location"))
	assert.Len(t, repo.rows, 1)

	cookie := flashCookie(t, w)
	assert.True(t, cookie.HttpOnly)

	w = do(r, http.MethodGet, "/flavour/", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Flavour added.")
	assert.Contains(t, body, "Vanilla")
	assert.Contains(t, body, "10.5")
	assert.Contains(t, body, "3.50")

	cleared := flashCookie(t, w)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestHandler_InvalidAddRendersFormWithErrors(t *testing.T) {
	r, repo := newRouter(t)

	w := do(r, http.MethodPost, "/flavour/add/", values("Vanilla", "1", "1234.56"))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, MsgAddInvalid)
	assert.Contains(t, body, "Ensure that there are no more than 5 digits in total.")
	assert.Contains(t, body, `value="1234.56"`)
	assert.Empty(t, repo.rows)
}

func TestHandler_EditPrefillsForm(t *testing.T) {
	r, repo := newRouter(t)
	seed(t, repo, "Mint")

	w := do(r, http.MethodGet, "/flavour/1/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `value="Mint"`)
	assert.Contains(t, body, `value="2.00"`)
	assert.Contains(t, body, `action="/flavour/1/"`)
}

func TestHandler_DeleteConfirmThenSubmit(t *testing.T) {
	r, repo := newRouter(t)
	seed(t, repo, "Mint")

	w := do(r, http.MethodGet, "/flavour/1/delete/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Are you sure")
	assert.Len(t, repo.rows, 1)

	w = do(r, http.MethodPost, "/flavour/1/delete/", url.Values{})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, repo.rows)

	w = do(r, http.MethodGet, "/flavour/", nil, flashCookie(t, w))
	assert.Contains(t, w.Body.String(), MsgDeleted)
}

func TestHandler_NotFound(t *testing.T) {
	r, repo := newRouter(t)
	seed(t, repo, "Mint")

	for _, target := range []string{"/flavour/2/", "/flavour/abc/", "/flavour/0/delete/", "/flavour/-4/delete/"} {
		for _, method := range []string{http.MethodGet, http.MethodPost} {
			w := do(r, method, target, url.Values{})
			assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", method, target)
			assert.Contains(t, w.Body.String(), "Not Found")
		}
	}
	assert.Len(t, repo.rows, 1)
}

func TestHandler_ListShowsEmptyState(t *testing.T) {
	r, _ := newRouter(t)

	w := do(r, http.MethodGet, "/flavour/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No flavours yet.")
}
