// Package dialog implements the Variant B flow: a turn-by-turn dialog
// over a fixed question list with server-tracked progression.
package dialog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/momorit/mein-formularprojekt/internal/catalog"
	"github.com/momorit/mein-formularprojekt/internal/entity"
	"github.com/momorit/mein-formularprojekt/internal/generation"
	"github.com/momorit/mein-formularprojekt/internal/session"
	"github.com/momorit/mein-formularprojekt/internal/storage"
)

type Usecase struct {
	chain    *generation.Chain
	store    *storage.DualStore
	sessions *session.Store
}

func NewUsecase(chain *generation.Chain, store *storage.DualStore, sessions *session.Store) *Usecase {
	return &Usecase{
		chain:    chain,
		store:    store,
		sessions: sessions,
	}
}

// Start creates a new dialog session over the static question list.
func (u *Usecase) Start(ctx context.Context, dialogContext string) *entity.DialogStartResponse {
	s := u.newSession()
	u.sessions.Put(s)

	ctxzap.Info(ctx, "dialog session started",
		zap.String("session_id", s.ID),
		zap.Int("questions", len(s.Questions)),
	)

	return &entity.DialogStartResponse{
		SessionID:            s.ID,
		Questions:            s.Questions,
		TotalQuestions:       len(s.Questions),
		CurrentQuestionIndex: 0,
		WelcomeMessage:       fmt.Sprintf("Hallo! Ich führe Sie durch %d Fragen zur Gebäude-Energieberatung.", len(s.Questions)),
	}
}

func (u *Usecase) newSession() *entity.DialogSession {
	return &entity.DialogSession{
		ID:        uuid.NewString(),
		Questions: catalog.DialogQuestions(),
		Answers:   map[string]string{},
		CreatedAt: time.Now(),
	}
}

// Message processes one dialog turn. A trimmed "?" asks for help with the
// current question and does not advance the cursor; anything else is
// recorded as the answer and advances by exactly one. Messages after the
// last answer get an informational response, not an error.
func (u *Usecase) Message(ctx context.Context, sessionID, message string) *entity.DialogMessageResponse {
	s, ok := u.sessions.Get(sessionID)
	if !ok {
		// Unknown or expired session: start fresh rather than failing
		// the participant mid-study.
		s = u.newSession()
		if sessionID != "" {
			s.ID = sessionID
		}
		u.sessions.Put(s)
		ctxzap.Info(ctx, "dialog session recreated", zap.String("session_id", s.ID))
	}

	lock := u.sessions.Lock(s.ID)
	lock.Lock()
	defer lock.Unlock()

	s.ChatLog = append(s.ChatLog, entity.ChatMessage{Speaker: "user", Text: message})

	var resp *entity.DialogMessageResponse
	switch {
	case s.Completed():
		resp = &entity.DialogMessageResponse{
			Response:             catalog.CannedDialogComplete,
			CurrentQuestionIndex: s.CurrentIndex,
			Completed:            true,
		}
	case entity.IsHelpRequest(message):
		resp = u.handleHelp(ctx, s)
	default:
		resp = u.handleAnswer(ctx, s, message)
	}

	s.ChatLog = append(s.ChatLog, entity.ChatMessage{Speaker: "assistant", Text: resp.Response})
	u.sessions.Put(s)
	return resp
}

func (u *Usecase) handleHelp(ctx context.Context, s *entity.DialogSession) *entity.DialogMessageResponse {
	q := s.CurrentQuestion()

	result := u.chain.Generate(ctx, &entity.GenerationRequest{
		Prompt:     fmt.Sprintf("Der Nutzer bittet um Hilfe zur aktuellen Frage: \"%s\". Erkläre, was gemeint ist und wie eine Antwort aussehen kann.", q.Question),
		Context:    catalog.Scenario,
		DialogMode: true,
	})

	text := result.Text
	if result.Source == entity.SourceFallback {
		if fieldText, ok := catalog.FieldHelp(q.Field); ok {
			text = fieldText
		}
	}

	return &entity.DialogMessageResponse{
		Response:             text + "\n\nAktuelle Frage: " + q.Question,
		HelpProvided:         true,
		CurrentQuestionIndex: s.CurrentIndex,
	}
}

func (u *Usecase) handleAnswer(ctx context.Context, s *entity.DialogSession, message string) *entity.DialogMessageResponse {
	q := s.CurrentQuestion()
	s.Answers[q.Field] = message
	s.CurrentIndex++

	if s.Completed() {
		result := u.chain.Generate(ctx, &entity.GenerationRequest{
			Prompt:     message,
			Context:    "Der Nutzer hat die letzte Frage beantwortet. Bestätige kurz und weise darauf hin, dass die Beratung abgeschlossen ist und gespeichert werden kann.",
			DialogMode: true,
		})
		text := result.Text
		if result.Source == entity.SourceFallback {
			text = catalog.CannedDialogComplete
		}
		return &entity.DialogMessageResponse{
			Response:             text,
			CurrentQuestionIndex: s.CurrentIndex,
			Completed:            true,
		}
	}

	next := s.CurrentQuestion()
	result := u.chain.Generate(ctx, &entity.GenerationRequest{
		Prompt:     message,
		Context:    fmt.Sprintf("Der Nutzer hat die Frage \"%s\" beantwortet. Bestätige kurz und stelle die nächste Frage: \"%s\"", q.Question, next.Question),
		DialogMode: true,
	})

	text := result.Text
	if result.Source == entity.SourceFallback {
		text = fmt.Sprintf("%s\n\nNächste Frage (%d/%d): %s",
			catalog.CannedDialogAck, s.CurrentIndex+1, len(s.Questions), next.Question)
	}

	return &entity.DialogMessageResponse{
		Response:             text,
		NextQuestion:         true,
		CurrentQuestionIndex: s.CurrentIndex,
	}
}

// Save persists the submitted dialog data. The client-submitted
// questions, answers and chat history are stored verbatim.
func (u *Usecase) Save(ctx context.Context, req *entity.DialogSaveRequest) (*entity.StorageResult, error) {
	doc := map[string]any{
		"variant":     "B_dialog_system",
		"session_id":  req.SessionID,
		"questions":   req.Questions,
		"answers":     req.Answers,
		"chatHistory": req.ChatHistory,
		"metadata":    req.Metadata,
	}
	return u.store.Persist(ctx, "dialog_b", doc)
}
