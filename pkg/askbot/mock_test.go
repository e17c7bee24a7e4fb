package askbot

import (
	"context"

	"github.com/kailas-cloud/askbot/internal/domain/reply"
	healthuc "github.com/kailas-cloud/askbot/internal/usecase/health"
)

// --- chatUseCase mock ---

type mockChatUC struct {
	answerFn  func(ctx context.Context, raw string) (reply.Reply, error)
	welcome   string
	questions []string
}

func (m *mockChatUC) Answer(ctx context.Context, raw string) (reply.Reply, error) {
	return m.answerFn(ctx, raw)
}

func (m *mockChatUC) Welcome() string { return m.welcome }

func (m *mockChatUC) AllQuestions() []string { return m.questions }

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(context.Context) healthuc.Report { return m.report }

// --- Lookup mock ---

type mockLookup struct {
	fn    func(ctx context.Context, title string) (string, error)
	calls int
}

func (m *mockLookup) Summary(ctx context.Context, title string) (string, error) {
	m.calls++
	return m.fn(ctx, title)
}
