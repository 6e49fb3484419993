package api

import (
	"encoding/json"
	"hoangtv/flashcard-api/model"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryListShowsOnlyPublicSets(t *testing.T) {
	a := newTestAPI(t)
	cookies, _ := registerUser(t, a, "mei@example.com", "mei")

	publicID := createSet(t, a, cookies, "Public set", true)
	createSet(t, a, cookies, "Private set", false)

	// Anonymous request: the library needs no identity
	w := doJSON(t, a, http.MethodGet, "/api/library", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sets []librarySet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sets))
	require.Len(t, sets, 1)
	assert.Equal(t, publicID, sets[0].ID)
	assert.Equal(t, "mei@example.com", sets[0].UserEmail)
}

func TestLibraryDetail(t *testing.T) {
	a := newTestAPI(t)
	cookies, _ := registerUser(t, a, "mei@example.com", "mei")

	publicID := createSet(t, a, cookies, "Public set", true)
	privateID := createSet(t, a, cookies, "Private set", false)
	createCard(t, a, cookies, publicID, "一", "one")

	t.Run("public detail with cards", func(t *testing.T) {
		w := doJSON(t, a, http.MethodGet, "/api/library/"+publicID, nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		cards, ok := body["cards"].([]any)
		require.True(t, ok)
		assert.Len(t, cards, 1)
	})

	t.Run("private set looks missing", func(t *testing.T) {
		w := doJSON(t, a, http.MethodGet, "/api/library/"+privateID, nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown set", func(t *testing.T) {
		w := doJSON(t, a, http.MethodGet, "/api/library/missing", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLibraryCopy(t *testing.T) {
	a := newTestAPI(t)

	ownerCookies, _ := registerUser(t, a, "owner@example.com", "owner")
	readerCookies, readerID := registerUser(t, a, "reader@example.com", "reader")

	sourceID := createSet(t, a, ownerCookies, "N5 Kanji", true)
	sourceCardID := createCard(t, a, ownerCookies, sourceID, "一", "one")

	w := doJSON(t, a, http.MethodPost, "/api/library/"+sourceID+"/copy", nil, readerCookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	newSetID, _ := decodeBody(t, w)["newSetId"].(string)
	require.NotEmpty(t, newSetID)
	require.NotEqual(t, sourceID, newSetID)

	var copied model.FlashcardSet
	require.NoError(t, a.DB.Where("id = ?", newSetID).First(&copied).Error)
	assert.Equal(t, readerID, copied.UserID)
	assert.False(t, copied.IsPublic)
	assert.Equal(t, "N5 Kanji", copied.Title)

	var cards []model.Flashcard
	require.NoError(t, a.DB.Where("set_id = ?", newSetID).Find(&cards).Error)
	require.Len(t, cards, 1)
	assert.Equal(t, "一", cards[0].Front)
	assert.Equal(t, "one", cards[0].Back)
	assert.NotEqual(t, sourceCardID, cards[0].ID)
}

func TestLibraryCopyAccess(t *testing.T) {
	a := newTestAPI(t)

	ownerCookies, _ := registerUser(t, a, "owner@example.com", "owner")
	readerCookies, _ := registerUser(t, a, "reader@example.com", "reader")

	privateID := createSet(t, a, ownerCookies, "Private set", false)

	t.Run("requires identity", func(t *testing.T) {
		w := doJSON(t, a, http.MethodPost, "/api/library/"+privateID+"/copy", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown source", func(t *testing.T) {
		w := doJSON(t, a, http.MethodPost, "/api/library/missing/copy", nil, readerCookies)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("foreign private source", func(t *testing.T) {
		w := doJSON(t, a, http.MethodPost, "/api/library/"+privateID+"/copy", nil, readerCookies)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("own private source", func(t *testing.T) {
		w := doJSON(t, a, http.MethodPost, "/api/library/"+privateID+"/copy", nil, ownerCookies)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}
