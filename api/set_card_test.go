package api

import (
	"encoding/json"
	"hoangtv/flashcard-api/model"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCRUD(t *testing.T) {
	a := newTestAPI(t)
	cookies, userID := registerUser(t, a, "mei@example.com", "mei")

	setID := createSet(t, a, cookies, "N5 Kanji", false)

	t.Run("list owned sets", func(t *testing.T) {
		w := doJSON(t, a, http.MethodGet, "/api/sets", nil, cookies)
		require.Equal(t, http.StatusOK, w.Code)

		var sets []model.FlashcardSet
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sets))
		require.Len(t, sets, 1)
		assert.Equal(t, setID, sets[0].ID)
		assert.Equal(t, userID, sets[0].UserID)
	})

	t.Run("detail includes author email", func(t *testing.T) {
		w := doJSON(t, a, http.MethodGet, "/api/sets/"+setID, nil, cookies)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "N5 Kanji", body["title"])
		assert.Equal(t, "mei@example.com", body["user_email"])
	})

	t.Run("update", func(t *testing.T) {
		w := doJSON(t, a, http.MethodPut, "/api/sets/"+setID, gin.H{
			"title":     "N5 Kanji (revised)",
			"subject":   "Japanese",
			"is_public": true,
		}, cookies)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "N5 Kanji (revised)", body["title"])
		assert.Equal(t, true, body["is_public"])
	})

	t.Run("empty title rejected", func(t *testing.T) {
		w := doJSON(t, a, http.MethodPut, "/api/sets/"+setID, gin.H{"title": ""}, cookies)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete removes cards too", func(t *testing.T) {
		createCard(t, a, cookies, setID, "一", "one")

		w := doJSON(t, a, http.MethodDelete, "/api/sets/"+setID, nil, cookies)
		require.Equal(t, http.StatusOK, w.Code)

		var count int64
		require.NoError(t, a.DB.Model(model.Flashcard{}).Where("set_id = ?", setID).Count(&count).Error)
		assert.Zero(t, count)

		w = doJSON(t, a, http.MethodGet, "/api/sets/"+setID, nil, cookies)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCardCRUD(t *testing.T) {
	a := newTestAPI(t)
	cookies, _ := registerUser(t, a, "mei@example.com", "mei")

	setID := createSet(t, a, cookies, "N5 Kanji", false)
	cardID := createCard(t, a, cookies, setID, "一", "one")

	t.Run("list", func(t *testing.T) {
		w := doJSON(t, a, http.MethodGet, "/api/sets/"+setID+"/cards", nil, cookies)
		require.Equal(t, http.StatusOK, w.Code)

		var cards []model.Flashcard
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
		require.Len(t, cards, 1)
		assert.Equal(t, cardID, cards[0].ID)
	})

	t.Run("update", func(t *testing.T) {
		w := doJSON(t, a, http.MethodPut, "/api/sets/"+setID+"/cards/"+cardID, gin.H{
			"front":  "一",
			"back":   "one (1)",
			"romaji": "ichi",
		}, cookies)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "one (1)", body["back"])
		assert.Equal(t, "ichi", body["romaji"])
	})

	t.Run("missing front rejected", func(t *testing.T) {
		w := doJSON(t, a, http.MethodPost, "/api/sets/"+setID+"/cards", gin.H{"back": "one"}, cookies)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update of unknown card", func(t *testing.T) {
		w := doJSON(t, a, http.MethodPut, "/api/sets/"+setID+"/cards/missing", gin.H{
			"front": "x", "back": "y",
		}, cookies)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := doJSON(t, a, http.MethodDelete, "/api/sets/"+setID+"/cards/"+cardID, nil, cookies)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["success"])
	})
}

func TestOwnershipGuardOnMutations(t *testing.T) {
	a := newTestAPI(t)

	ownerCookies, _ := registerUser(t, a, "owner@example.com", "owner")
	strangerCookies, _ := registerUser(t, a, "stranger@example.com", "stranger")

	// Public visibility must not loosen the mutation guard
	setID := createSet(t, a, ownerCookies, "Public set", true)
	cardID := createCard(t, a, ownerCookies, setID, "一", "one")

	tests := []struct {
		name   string
		method string
		path   string
		body   gin.H
	}{
		{"update set", http.MethodPut, "/api/sets/" + setID, gin.H{"title": "hijacked"}},
		{"delete set", http.MethodDelete, "/api/sets/" + setID, nil},
		{"list cards", http.MethodGet, "/api/sets/" + setID + "/cards", nil},
		{"create card", http.MethodPost, "/api/sets/" + setID + "/cards", gin.H{"front": "x", "back": "y"}},
		{"update card", http.MethodPut, "/api/sets/" + setID + "/cards/" + cardID, gin.H{"front": "x", "back": "y"}},
		{"delete card", http.MethodDelete, "/api/sets/" + setID + "/cards/" + cardID, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, a, tt.method, tt.path, tt.body, strangerCookies)
			assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
		})
	}

	t.Run("missing set is 404, not 403", func(t *testing.T) {
		w := doJSON(t, a, http.MethodDelete, "/api/sets/missing", nil, strangerCookies)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("no identity is 401", func(t *testing.T) {
		w := doJSON(t, a, http.MethodDelete, "/api/sets/"+setID, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSetReadAccess(t *testing.T) {
	a := newTestAPI(t)

	ownerCookies, _ := registerUser(t, a, "owner@example.com", "owner")
	strangerCookies, _ := registerUser(t, a, "stranger@example.com", "stranger")

	publicID := createSet(t, a, ownerCookies, "Public set", true)
	privateID := createSet(t, a, ownerCookies, "Private set", false)

	t.Run("public set readable by non-owner", func(t *testing.T) {
		w := doJSON(t, a, http.MethodGet, "/api/sets/"+publicID, nil, strangerCookies)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("private set hidden from non-owner", func(t *testing.T) {
		w := doJSON(t, a, http.MethodGet, "/api/sets/"+privateID, nil, strangerCookies)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
