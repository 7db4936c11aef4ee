package dialog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/momorit/mein-formularprojekt/internal/catalog"
	"github.com/momorit/mein-formularprojekt/internal/entity"
	"github.com/momorit/mein-formularprojekt/internal/generation"
	"github.com/momorit/mein-formularprojekt/internal/session"
	"github.com/momorit/mein-formularprojekt/internal/storage"
)

func newTestUsecase(t *testing.T) (*Usecase, string) {
	t.Helper()
	dir := t.TempDir()
	chain := generation.NewChain(zap.NewNop())
	store := storage.NewDualStore(storage.NewLocalStore(dir), nil)
	return NewUsecase(chain, store, session.NewStore(time.Hour)), dir
}

func TestStartReturnsStaticQuestionList(t *testing.T) {
	u, _ := newTestUsecase(t)

	resp := u.Start(context.Background(), "")

	require.NotEmpty(t, resp.SessionID)
	assert.Equal(t, 6, resp.TotalQuestions)
	assert.Equal(t, 0, resp.CurrentQuestionIndex)
	assert.Contains(t, resp.WelcomeMessage, "6 Fragen")

	var fields []string
	for _, q := range resp.Questions {
		fields = append(fields, q.Field)
	}
	assert.Equal(t, []string{
		"BAUJAHR",
		"ANZAHL_WOHNEINHEITEN",
		"WOHNFLÄCHE_GESAMT",
		"GEBÄUDEADRESSE",
		"DÄMMSYSTEM",
		"ENERGETISCHE_ANALYSE_DETAIL",
	}, fields)
}

func TestAnswersAdvanceByExactlyOneUntilComplete(t *testing.T) {
	u, _ := newTestUsecase(t)
	start := u.Start(context.Background(), "")

	answers := []string{"1965", "10", "720 m²", "Beispielstraße 1, 20095 Hamburg", "WDVS 140mm Mineralwolle", "Keine Angabe möglich"}
	for i, answer := range answers {
		resp := u.Message(context.Background(), start.SessionID, answer)
		assert.Equal(t, i+1, resp.CurrentQuestionIndex)
		if i < len(answers)-1 {
			assert.True(t, resp.NextQuestion)
			assert.False(t, resp.Completed)
			assert.Contains(t, resp.Response, fmt.Sprintf("Nächste Frage (%d/6)", i+2))
		} else {
			assert.True(t, resp.Completed)
		}
	}

	s, ok := u.sessions.Get(start.SessionID)
	require.True(t, ok)
	assert.True(t, s.Completed())
	assert.Equal(t, "1965", s.Answers["BAUJAHR"])
	assert.Equal(t, "Keine Angabe möglich", s.Answers["ENERGETISCHE_ANALYSE_DETAIL"])
}

func TestHelpRequestDoesNotAdvance(t *testing.T) {
	u, _ := newTestUsecase(t)
	start := u.Start(context.Background(), "")

	resp := u.Message(context.Background(), start.SessionID, " ? ")

	assert.True(t, resp.HelpProvided)
	assert.Equal(t, 0, resp.CurrentQuestionIndex)
	assert.False(t, resp.NextQuestion)
	assert.Contains(t, resp.Response, "Aktuelle Frage: In welchem Jahr wurde Ihr Gebäude erbaut?")
	assert.Contains(t, resp.Response, "1965", "canned field help mentions the scenario value")

	s, ok := u.sessions.Get(start.SessionID)
	require.True(t, ok)
	assert.Empty(t, s.Answers, "help must not record an answer")
	assert.Equal(t, 0, s.CurrentIndex)
}

func TestMessageAfterCompletionIsInformational(t *testing.T) {
	u, _ := newTestUsecase(t)
	start := u.Start(context.Background(), "")

	for range 6 {
		u.Message(context.Background(), start.SessionID, "Antwort")
	}

	resp := u.Message(context.Background(), start.SessionID, "Noch etwas?")
	assert.True(t, resp.Completed)
	assert.Equal(t, 6, resp.CurrentQuestionIndex)
	assert.Equal(t, catalog.CannedDialogComplete, resp.Response)

	s, _ := u.sessions.Get(start.SessionID)
	assert.Len(t, s.Answers, 6, "post-completion messages must not alter answers")
}

func TestUnknownSessionIsRecreatedWithSameID(t *testing.T) {
	u, _ := newTestUsecase(t)

	resp := u.Message(context.Background(), "expired-session", "1965")

	assert.Equal(t, 1, resp.CurrentQuestionIndex)

	s, ok := u.sessions.Get("expired-session")
	require.True(t, ok)
	assert.Equal(t, "expired-session", s.ID)
	assert.Equal(t, "1965", s.Answers["BAUJAHR"])
}

func TestMessageRecordsChatLog(t *testing.T) {
	u, _ := newTestUsecase(t)
	start := u.Start(context.Background(), "")

	u.Message(context.Background(), start.SessionID, "1965")

	s, _ := u.sessions.Get(start.SessionID)
	require.Len(t, s.ChatLog, 2)
	assert.Equal(t, entity.ChatMessage{Speaker: "user", Text: "1965"}, s.ChatLog[0])
	assert.Equal(t, "assistant", s.ChatLog[1].Speaker)
}

func TestSaveWritesTimestampedDialogFile(t *testing.T) {
	u, dir := newTestUsecase(t)

	answers := map[string]string{"BAUJAHR": "1965", "ANZAHL_WOHNEINHEITEN": "10"}
	result, err := u.Save(context.Background(), &entity.DialogSaveRequest{
		SessionID: "s1",
		Questions: catalog.DialogQuestions(),
		Answers:   answers,
		ChatHistory: []entity.ChatMessage{
			{Speaker: "user", Text: "1965"},
		},
	})

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^dialog_b_\d{8}_\d{6}\.json$`), result.Filename)
	assert.True(t, result.StoredLocally)

	raw, err := os.ReadFile(filepath.Join(dir, result.Filename))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "B_dialog_system", doc["variant"])
	assert.Equal(t, map[string]any{"BAUJAHR": "1965", "ANZAHL_WOHNEINHEITEN": "10"}, doc["answers"])
	assert.Contains(t, doc, "study_metadata")
}
