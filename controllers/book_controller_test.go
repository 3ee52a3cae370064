package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBooksEmpty(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/books", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListBooksOrderedProjection(t *testing.T) {
	r, _ := setupRouter(t)

	for _, name := range []string{"Solaris", "Dune"} {
		w := doRequest(t, r, http.MethodPost, "/books", `{"name":"`+name+`"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Empty(t, w.Body.String())
	}

	w := doRequest(t, r, http.MethodGet, "/books", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":2,"name":"Dune"},{"id":1,"name":"Solaris"}]`, w.Body.String())
}

func TestGetBookNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/books/99", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Book not found"}`, w.Body.String())

	// 非数字 id 同样按查不到处理
	w = doRequest(t, r, http.MethodGet, "/books/abc", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBookNoScoresSentinel(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/books", `{"name":"Dune"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodGet, "/books/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Dune","score":-1}`, w.Body.String())
}

func TestCreateBookValidation(t *testing.T) {
	r, _ := setupRouter(t)

	for _, body := range []string{`{"name":""}`, `{}`, `{"name":7}`} {
		w := doRequest(t, r, http.MethodPost, "/books", body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Contains(t, w.Body.String(), "errors")
	}

	// 被拒的请求不会落库
	w := doRequest(t, r, http.MethodGet, "/books", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// 建书借书还书打分的完整回路
func TestBookScoreLifecycle(t *testing.T) {
	r, _ := setupRouter(t)

	require.Equal(t, http.StatusCreated, doRequest(t, r, http.MethodPost, "/books", `{"name":"Dune"}`).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, r, http.MethodPost, "/users", `{"name":"Alice"}`).Code)

	require.Equal(t, http.StatusNoContent, doRequest(t, r, http.MethodPost, "/users/1/borrow/1", "").Code)

	// 在借中的记录不进平均分
	w := doRequest(t, r, http.MethodGet, "/books/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Dune","score":-1}`, w.Body.String())

	require.Equal(t, http.StatusNoContent, doRequest(t, r, http.MethodPost, "/users/1/return/1", `{"score":8}`).Code)

	w = doRequest(t, r, http.MethodGet, "/books/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Dune","score":8}`, w.Body.String())
}

// 存储层挂掉时每条路由都只回统一的 internal error
func TestStorageFailureMapsToInternalError(t *testing.T) {
	r, repo := setupRouter(t)

	require.Equal(t, http.StatusCreated, doRequest(t, r, http.MethodPost, "/users", `{"name":"alice"}`).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, r, http.MethodPost, "/books", `{"name":"Dune"}`).Code)

	sqlDB, err := repo.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	cases := []struct{ method, path, body string }{
		{http.MethodGet, "/books", ""},
		{http.MethodGet, "/books/1", ""},
		{http.MethodPost, "/books", `{"name":"Solaris"}`},
		{http.MethodGet, "/users", ""},
		{http.MethodGet, "/users/1", ""},
		{http.MethodPost, "/users", `{"name":"bob"}`},
		{http.MethodPost, "/users/1/borrow/1", ""},
		{http.MethodPost, "/users/1/return/1", `{"score":5}`},
	}
	for _, tc := range cases {
		w := doRequest(t, r, tc.method, tc.path, tc.body)
		require.Equal(t, http.StatusInternalServerError, w.Code, "%s %s", tc.method, tc.path)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String(), "%s %s", tc.method, tc.path)
	}
}

func TestBookAverageScoreRounding(t *testing.T) {
	r, _ := setupRouter(t)

	require.Equal(t, http.StatusCreated, doRequest(t, r, http.MethodPost, "/books", `{"name":"Dune"}`).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, r, http.MethodPost, "/users", `{"name":"Alice"}`).Code)

	borrowAndScore := func(score string) {
		require.Equal(t, http.StatusNoContent, doRequest(t, r, http.MethodPost, "/users/1/borrow/1", "").Code)
		require.Equal(t, http.StatusNoContent, doRequest(t, r, http.MethodPost, "/users/1/return/1", `{"score":`+score+`}`).Code)
	}

	borrowAndScore("4")
	borrowAndScore("5")

	w := doRequest(t, r, http.MethodGet, "/books/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Dune","score":4.5}`, w.Body.String())

	borrowAndScore("3")

	w = doRequest(t, r, http.MethodGet, "/books/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Dune","score":4}`, w.Body.String())
}
