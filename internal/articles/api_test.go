package articles

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) (humatest.TestAPI, *Store) {
	t.Helper()
	_, api := humatest.New(t)
	store := NewStore()
	Register(api, store)
	return api, store
}

func TestCreateAndFetchArticle(t *testing.T) {
	api, _ := newTestAPI(t)

	resp := api.Post("/articles", map[string]any{
		"title":       "Photosynthesis",
		"description": "Grade 6 science",
		"imageUrl":    "https://example.com/leaf.png",
		"article":     "JVBERi0=",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "/articles/1", resp.Header().Get("Location"))

	resp = api.Get("/articles/1")
	require.Equal(t, http.StatusOK, resp.Code)
	var got Article
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Photosynthesis", got.Title)
	assert.Equal(t, []byte("%PDF-"), got.Content)

	resp = api.Get("/articles")
	require.Equal(t, http.StatusOK, resp.Code)
	var all []Article
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &all))
	assert.Len(t, all, 1)
}

func TestArticleErrors(t *testing.T) {
	api, _ := newTestAPI(t)

	resp := api.Get("/articles/5")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Article id 5 not found!")

	require.Equal(t, http.StatusCreated, api.Post("/articles", map[string]any{"title": "Dup"}).Code)
	assert.Equal(t, http.StatusConflict, api.Post("/articles", map[string]any{"title": "Dup"}).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, api.Post("/articles", map[string]any{"description": "no title"}).Code)
}

func TestPatchArticle(t *testing.T) {
	api, store := newTestAPI(t)
	_, err := store.Save(Article{Title: "History", Description: "old"})
	require.NoError(t, err)

	resp := api.Patch("/articles/1", map[string]any{"description": "new"})
	require.Equal(t, http.StatusOK, resp.Code)

	var got Article
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, "History", got.Title)
	assert.Equal(t, "new", got.Description)

	assert.Equal(t, http.StatusNotFound, api.Patch("/articles/9", map[string]any{"title": "x"}).Code)
}
