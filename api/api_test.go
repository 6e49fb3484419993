package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hoangtv/flashcard-api/model"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

var testDBSeq atomic.Int64

// newTestAPI builds a full router against a fresh in-memory database.
// These tests share the process-global viper, so they stay serial.
func newTestAPI(t *testing.T) *API {
	t.Helper()

	gin.SetMode(gin.TestMode)

	viper.Set("db.driver", "sqlite")
	viper.Set("db.dsn", fmt.Sprintf("file:apitest%d?mode=memory&cache=shared", testDBSeq.Add(1)))
	viper.Set("jwt.secret", "test-secret")
	viper.Set("cors.origins", []string{"http://localhost:3000"})

	a, err := NewRouter()
	require.NoError(t, err)

	return a
}

func doJSON(t *testing.T, a *API, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerUser signs a user up and returns their auth cookies and ID.
func registerUser(t *testing.T, a *API, email, username string) ([]*http.Cookie, string) {
	t.Helper()

	w := doJSON(t, a, http.MethodPost, "/api/users", gin.H{
		"email":    email,
		"username": username,
		"password": "correct-horse",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	userID, _ := body["userID"].(string)
	require.NotEmpty(t, userID)

	return w.Result().Cookies(), userID
}

func createSet(t *testing.T, a *API, cookies []*http.Cookie, title string, public bool) string {
	t.Helper()

	w := doJSON(t, a, http.MethodPost, "/api/sets", gin.H{
		"title":     title,
		"subject":   "Japanese",
		"is_public": public,
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	id, _ := decodeBody(t, w)["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func createCard(t *testing.T, a *API, cookies []*http.Cookie, setID, front, back string) string {
	t.Helper()

	w := doJSON(t, a, http.MethodPost, "/api/sets/"+setID+"/cards", gin.H{
		"front": front,
		"back":  back,
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	id, _ := decodeBody(t, w)["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func promoteToAdmin(t *testing.T, a *API, userID string) {
	t.Helper()

	require.NoError(t, a.DB.
		Model(model.User{}).
		Where("id = ?", userID).
		Update("role", model.RoleAdmin).
		Error)
}
