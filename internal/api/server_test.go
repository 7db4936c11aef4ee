package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	dialogapi "github.com/momorit/mein-formularprojekt/internal/api/dialog"
	formapi "github.com/momorit/mein-formularprojekt/internal/api/form"
	studyapi "github.com/momorit/mein-formularprojekt/internal/api/study"
	"github.com/momorit/mein-formularprojekt/internal/entity"
	"github.com/momorit/mein-formularprojekt/internal/generation"
	"github.com/momorit/mein-formularprojekt/internal/pkg/validator"
	"github.com/momorit/mein-formularprojekt/internal/session"
	"github.com/momorit/mein-formularprojekt/internal/storage"
	dialoguc "github.com/momorit/mein-formularprojekt/internal/usecase/dialog"
	formuc "github.com/momorit/mein-formularprojekt/internal/usecase/form"
	studyuc "github.com/momorit/mein-formularprojekt/internal/usecase/study"
)

// newTestServer wires the full router with the canned-only generation
// chain and local-only storage, the same shape the backend has when no
// provider and no Drive credentials are configured.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	chain := generation.NewChain(zap.NewNop())
	store := storage.NewDualStore(storage.NewLocalStore(t.TempDir()), nil)
	sessions := session.NewStore(time.Hour)
	v := validator.New()

	router := SetupRouter(
		formapi.NewHandler(formuc.NewUsecase(chain, store), v),
		dialogapi.NewHandler(dialoguc.NewUsecase(chain, store, sessions), v),
		studyapi.NewHandler(studyuc.NewUsecase(store), v),
		RouterConfig{AllowOrigins: AllowedOrigins(false), ExposeDocs: false},
		zap.NewNop(),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestGenerateInstructionsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/generate-instructions", entity.GenerateInstructionsRequest{Context: "Mieterhöhung"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body entity.GenerateInstructionsResponse
	decodeInto(t, resp, &body)
	assert.Len(t, body.Fields, 8)
	assert.Len(t, body.Instructions, 8)
	assert.Equal(t, "Mieterhöhung", body.ContextUsed)
}

func TestChatEndpointValidation(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/chat", entity.ChatRequest{})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/api/chat", entity.ChatRequest{Message: "Wie berechne ich die Fassadenfläche?"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body entity.ChatResponse
	decodeInto(t, resp, &body)
	assert.NotEmpty(t, body.Response)
	assert.False(t, body.LLMUsed, "canned-only chain must report llm_used=false")
}

func TestDialogFlowOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	// Start accepts an empty body
	resp, err := http.Post(srv.URL+"/api/dialog/start", "application/json", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var start entity.DialogStartResponse
	decodeInto(t, resp, &start)
	require.NotEmpty(t, start.SessionID)
	require.Equal(t, 6, start.TotalQuestions)

	// Help turn does not advance
	resp = postJSON(t, srv.URL+"/api/dialog/message", entity.DialogMessageRequest{SessionID: start.SessionID, Message: "?"})
	var help entity.DialogMessageResponse
	decodeInto(t, resp, &help)
	assert.True(t, help.HelpProvided)
	assert.Equal(t, 0, help.CurrentQuestionIndex)

	// Answer turn advances by one
	resp = postJSON(t, srv.URL+"/api/dialog/message", entity.DialogMessageRequest{SessionID: start.SessionID, Message: "1965"})
	var answer entity.DialogMessageResponse
	decodeInto(t, resp, &answer)
	assert.Equal(t, 1, answer.CurrentQuestionIndex)
	assert.True(t, answer.NextQuestion)

	// Save the collected data
	resp = postJSON(t, srv.URL+"/api/dialog/save", entity.DialogSaveRequest{
		SessionID: start.SessionID,
		Answers:   map[string]string{"BAUJAHR": "1965"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var saved entity.SaveResponse
	decodeInto(t, resp, &saved)
	assert.True(t, saved.Success)
	assert.Equal(t, "local", saved.Storage)
	assert.Regexp(t, `^dialog_b_\d{8}_\d{6}\.json$`, saved.Filename)
}

func TestStudySaveEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/study/save", entity.StudySaveRequest{})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/api/study/save", entity.StudySaveRequest{
		ParticipantID: "p07",
		Demographics:  map[string]string{"age": "31"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var saved entity.SaveResponse
	decodeInto(t, resp, &saved)
	assert.True(t, saved.Success)
	assert.Regexp(t, `^study_complete_p07_\d{8}_\d{6}\.json$`, saved.Filename)
}

func TestMalformedBodyReturns400(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/chat", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDocsHiddenWhenNotExposed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/docs")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
