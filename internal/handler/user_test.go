package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/farm-assistant/internal/model"
)

func TestHandleRegister(t *testing.T) {
	db := newTestStore(t)
	h := NewUserHandler(db, testLogger())

	rec := postJSON(t, h.HandleRegister, `{"email":"ravi@example.com","firstName":"Ravi","lastName":"Kumar","location":"Mysore, Karnataka","language":"kn"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var user model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ravi", user.FirstName)
	assert.Equal(t, "kn", user.Language)
}

func TestHandleRegisterInvalidEmail(t *testing.T) {
	db := newTestStore(t)
	h := NewUserHandler(db, testLogger())

	rec := postJSON(t, h.HandleRegister, `{"email":"not-an-email","firstName":"Ravi"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Error map[string][]string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "email")
}

func TestHandleGetUser(t *testing.T) {
	db := newTestStore(t)
	h := NewUserHandler(db, testLogger())

	rec := postJSON(t, h.HandleRegister, `{"firstName":"Ravi","location":"Mysore"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/api/users/"+created.ID, nil)
	req.SetPathValue("id", created.ID)
	getRec := httptest.NewRecorder()
	h.HandleGet(getRec, req)

	require.Equal(t, http.StatusOK, getRec.Code)
	var fetched model.User
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Mysore", fetched.Location)
}

func TestHandleGetUserNotFound(t *testing.T) {
	db := newTestStore(t)
	h := NewUserHandler(db, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/users/nope", nil)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()
	h.HandleGet(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
