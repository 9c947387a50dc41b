package handlers_test

import (
	"FileVault/internal/model"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func createLink(t *testing.T, env *testEnv, name, url string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"name": name, "url": url})
	req := httptest.NewRequest(http.MethodPost, "/api/links", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	addAuthCookie(t, req, "alice", env.cfg.AuthSecret)
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

func TestLinks_RequireAuth(t *testing.T) {
	env := newTestEnv(t)

	reqs := []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/links", nil),
		httptest.NewRequest(http.MethodPost, "/api/links", bytes.NewBufferString(`{"name":"a","url":"b"}`)),
		httptest.NewRequest(http.MethodPut, "/api/links/1", bytes.NewBufferString(`{"name":"a","url":"b"}`)),
		httptest.NewRequest(http.MethodDelete, "/api/links/1", nil),
	}
	for _, req := range reqs {
		rr := httptest.NewRecorder()
		env.router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", req.Method, req.URL.Path)
	}
}

func TestLinks_CreateAndList(t *testing.T) {
	env := newTestEnv(t)

	rr := createLink(t, env, "Docs", "https://docs.example.com")
	assert.Equal(t, http.StatusCreated, rr.Code)

	var ln model.Link
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ln))
	assert.NotZero(t, ln.ID)
	assert.Equal(t, "Docs", ln.Name)

	req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
	addAuthCookie(t, req, "alice", env.cfg.AuthSecret)
	rr = httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	var links []model.Link
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &links))
	assert.Len(t, links, 1)
}

func TestLinks_CreateRejectsEmptyFields(t *testing.T) {
	env := newTestEnv(t)

	rr := createLink(t, env, "", "https://example.com")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = createLink(t, env, "Name", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLinks_Update(t *testing.T) {
	env := newTestEnv(t)

	rr := createLink(t, env, "Old", "https://old.example.com")
	var ln model.Link
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ln))

	body := bytes.NewBufferString(`{"name":"New","url":"https://new.example.com"}`)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/links/%d", ln.ID), body)
	req.Header.Set("Content-Type", "application/json")
	addAuthCookie(t, req, "alice", env.cfg.AuthSecret)
	rr = httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	// имя и адрес заменяются вместе
	req = httptest.NewRequest(http.MethodGet, "/api/links", nil)
	addAuthCookie(t, req, "alice", env.cfg.AuthSecret)
	rr = httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	var links []model.Link
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &links))
	if assert.Len(t, links, 1) {
		assert.Equal(t, "New", links[0].Name)
		assert.Equal(t, "https://new.example.com", links[0].URL)
	}

	// неизвестный id — 404
	req = httptest.NewRequest(http.MethodPut, "/api/links/99999",
		bytes.NewBufferString(`{"name":"x","url":"y"}`))
	req.Header.Set("Content-Type", "application/json")
	addAuthCookie(t, req, "alice", env.cfg.AuthSecret)
	rr = httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLinks_Delete(t *testing.T) {
	env := newTestEnv(t)

	rr := createLink(t, env, "Doomed", "https://example.com")
	var ln model.Link
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ln))

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/links/%d", ln.ID), nil)
	addAuthCookie(t, req, "alice", env.cfg.AuthSecret)
	rr = httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/links/%d", ln.ID), nil)
	addAuthCookie(t, req, "alice", env.cfg.AuthSecret)
	rr = httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
