package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/farm-assistant/internal/ai"
)

const diagnosisReply = `{"disease":"Tomato Leaf Blight","confidence":85,"remedies":["Remove affected leaves","Apply copper fungicide"]}`

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHandleDiagnoseRecordsActivity(t *testing.T) {
	db := newTestStore(t)
	h := NewDiagnoseHandler(newFakeGateway(diagnosisReply, nil), db, db, testLogger())

	rec := postJSON(t, h.HandleDiagnose, `{"imageData":"data:image/jpeg;base64,aGVsbG8=","userId":"farmer-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var diag ai.Diagnosis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &diag))
	assert.Equal(t, "Tomato Leaf Blight", diag.Disease)
	assert.Equal(t, 85, diag.Confidence)
	assert.Equal(t, "High", diag.Severity)

	activities, err := db.ListActivitiesByUser(context.Background(), "farmer-1")
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "scan", activities[0].Type)
	assert.Equal(t, "Disease scan completed", activities[0].Title)
	assert.Equal(t, "Tomato Leaf Blight detected in crop", activities[0].Description)
}

func TestHandleDiagnoseWithoutUser(t *testing.T) {
	db := newTestStore(t)
	h := NewDiagnoseHandler(newFakeGateway(diagnosisReply, nil), db, db, testLogger())

	rec := postJSON(t, h.HandleDiagnose, `{"imageData":"aGVsbG8="}`)

	// Anonymous diagnosis still works; it just leaves no trace.
	require.Equal(t, http.StatusOK, rec.Code)
	activities, err := db.ListActivitiesByUser(context.Background(), "farmer-1")
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestHandleDiagnoseMissingImage(t *testing.T) {
	db := newTestStore(t)
	h := NewDiagnoseHandler(newFakeGateway(diagnosisReply, nil), db, db, testLogger())

	rec := postJSON(t, h.HandleDiagnose, `{"userId":"farmer-1"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Error map[string][]string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "imageData")

	// Validation failures must not produce side effects.
	activities, err := db.ListActivitiesByUser(context.Background(), "farmer-1")
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestHandleDiagnoseMalformedBody(t *testing.T) {
	db := newTestStore(t)
	h := NewDiagnoseHandler(newFakeGateway(diagnosisReply, nil), db, db, testLogger())

	rec := postJSON(t, h.HandleDiagnose, `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDiagnoseUpstreamFailure(t *testing.T) {
	db := newTestStore(t)
	h := NewDiagnoseHandler(newFakeGateway("", errors.New("connection reset")), db, db, testLogger())

	rec := postJSON(t, h.HandleDiagnose, `{"imageData":"aGVsbG8=","userId":"farmer-1"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	// Stable message only — the cause stays server-side.
	assert.Equal(t, "failed to diagnose disease", body.Error)
	assert.NotContains(t, rec.Body.String(), "connection reset")

	// A failed diagnosis records nothing.
	activities, err := db.ListActivitiesByUser(context.Background(), "farmer-1")
	require.NoError(t, err)
	assert.Empty(t, activities)
}
