package service

import (
	"context"
	"math/rand"

	"codequiz/internal/bank"
	"codequiz/internal/domain"
	"codequiz/internal/logger"

	"go.uber.org/zap"
)

// QuestionBank is the part of bank.Cache the service depends on.
type QuestionBank interface {
	Load(ctx context.Context, force bool) ([]domain.Question, error)
	Status() bank.Status
}

// RandomPick is the result of PickRandom.
type RandomPick struct {
	Question domain.Question
	// Fallback is set when the filters matched nothing and the question was
	// drawn from the whole bank instead.
	Fallback bool
}

// FilterValues lists the labels available for filtering.
type FilterValues struct {
	Difficulties []string
	Types        []string
}

// AnswerResult is the outcome of CheckAnswer.
type AnswerResult struct {
	QuestionID string
	Correct    bool
	Expected   string // decoded expected output
}

// QuestionService defines the operations exposed to the HTTP layer.
type QuestionService interface {
	PickRandom(ctx context.Context, criteria domain.FilterCriteria) (*RandomPick, error)
	ListMatching(ctx context.Context, criteria domain.FilterCriteria, force bool) ([]domain.Question, error)
	ListDistinctValues(ctx context.Context, field domain.Field) ([]string, error)
	FilterValues(ctx context.Context) (*FilterValues, error)
	CheckAnswer(ctx context.Context, questionID, answer string) (*AnswerResult, error)
	BankStatus() bank.Status
}

type questionService struct {
	bank QuestionBank
}

// NewQuestionService creates a QuestionService reading from b.
func NewQuestionService(b QuestionBank) QuestionService {
	return &questionService{bank: b}
}

// loadHeld loads the bank without forcing. A refresh failure is logged and
// the questions still held are used.
func (s *questionService) loadHeld(ctx context.Context) []domain.Question {
	questions, err := s.bank.Load(ctx, false)
	if err != nil {
		logger.Get().Warn("Serving held question bank after refresh failure",
			zap.Error(err),
			zap.Int("held_questions", len(questions)),
		)
	}
	return questions
}

// PickRandom implements QuestionService
func (s *questionService) PickRandom(ctx context.Context, criteria domain.FilterCriteria) (*RandomPick, error) {
	all := s.loadHeld(ctx)
	if len(all) == 0 {
		return &RandomPick{Question: domain.EmptyBankQuestion}, nil
	}

	pool := bank.Filter(all, criteria)
	fallback := false
	if len(pool) == 0 {
		logger.Get().Debug("No question matches filters, picking from the whole bank",
			zap.String("difficulty", criteria.Difficulty),
			zap.String("type", criteria.Type),
		)
		pool = all
		fallback = true
	}

	return &RandomPick{
		Question: pool[rand.Intn(len(pool))],
		Fallback: fallback,
	}, nil
}

// ListMatching implements QuestionService
func (s *questionService) ListMatching(ctx context.Context, criteria domain.FilterCriteria, force bool) ([]domain.Question, error) {
	questions, err := s.bank.Load(ctx, force)
	if err != nil {
		// A forced listing fails only when no snapshot was ever loaded; a
		// loaded empty bank is still a valid answer.
		if force && s.bank.Status().FetchedAt.IsZero() {
			return nil, err
		}
		logger.Get().Warn("Listing held question bank after refresh failure",
			zap.Error(err),
			zap.Bool("forced", force),
			zap.Int("held_questions", len(questions)),
		)
	}
	return bank.Filter(questions, criteria), nil
}

// ListDistinctValues implements QuestionService
func (s *questionService) ListDistinctValues(ctx context.Context, field domain.Field) ([]string, error) {
	if field != domain.FieldDifficulty && field != domain.FieldType {
		return nil, domain.NewInvalidInputError("distinct values are only available for difficulty and type")
	}
	return bank.DistinctValues(s.loadHeld(ctx), field), nil
}

// FilterValues implements QuestionService
func (s *questionService) FilterValues(ctx context.Context) (*FilterValues, error) {
	questions := s.loadHeld(ctx)
	return &FilterValues{
		Difficulties: bank.DistinctValues(questions, domain.FieldDifficulty),
		Types:        bank.DistinctValues(questions, domain.FieldType),
	}, nil
}

// CheckAnswer implements QuestionService
func (s *questionService) CheckAnswer(ctx context.Context, questionID, answer string) (*AnswerResult, error) {
	var question *domain.Question
	if questionID == domain.EmptyBankQuestion.ID {
		question = &domain.EmptyBankQuestion
	} else {
		questions := s.loadHeld(ctx)
		for i := range questions {
			if questions[i].ID == questionID {
				question = &questions[i]
				break
			}
		}
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(questionID)
	}

	return &AnswerResult{
		QuestionID: question.ID,
		Correct:    AnswerMatches(question.ExpectedOutput, answer),
		Expected:   DecodeEscapes(question.ExpectedOutput),
	}, nil
}

// BankStatus implements QuestionService
func (s *questionService) BankStatus() bank.Status {
	return s.bank.Status()
}
