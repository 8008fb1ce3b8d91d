package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"codequiz/internal/bank"
	"codequiz/internal/domain"
	"codequiz/internal/dto"
	"codequiz/internal/handler"
	"codequiz/internal/middleware"
	"codequiz/internal/service"
	"codequiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

type MockQuestionService struct {
	PickRandomFunc         func(ctx context.Context, criteria domain.FilterCriteria) (*service.RandomPick, error)
	ListMatchingFunc       func(ctx context.Context, criteria domain.FilterCriteria, force bool) ([]domain.Question, error)
	ListDistinctValuesFunc func(ctx context.Context, field domain.Field) ([]string, error)
	FilterValuesFunc       func(ctx context.Context) (*service.FilterValues, error)
	CheckAnswerFunc        func(ctx context.Context, questionID, answer string) (*service.AnswerResult, error)
	BankStatusFunc         func() bank.Status
}

func (m *MockQuestionService) PickRandom(ctx context.Context, criteria domain.FilterCriteria) (*service.RandomPick, error) {
	if m.PickRandomFunc != nil {
		return m.PickRandomFunc(ctx, criteria)
	}
	panic("MockQuestionService.PickRandomFunc not implemented")
}
func (m *MockQuestionService) ListMatching(ctx context.Context, criteria domain.FilterCriteria, force bool) ([]domain.Question, error) {
	if m.ListMatchingFunc != nil {
		return m.ListMatchingFunc(ctx, criteria, force)
	}
	panic("MockQuestionService.ListMatchingFunc not implemented")
}
func (m *MockQuestionService) ListDistinctValues(ctx context.Context, field domain.Field) ([]string, error) {
	if m.ListDistinctValuesFunc != nil {
		return m.ListDistinctValuesFunc(ctx, field)
	}
	panic("MockQuestionService.ListDistinctValuesFunc not implemented")
}
func (m *MockQuestionService) FilterValues(ctx context.Context) (*service.FilterValues, error) {
	if m.FilterValuesFunc != nil {
		return m.FilterValuesFunc(ctx)
	}
	panic("MockQuestionService.FilterValuesFunc not implemented")
}
func (m *MockQuestionService) CheckAnswer(ctx context.Context, questionID, answer string) (*service.AnswerResult, error) {
	if m.CheckAnswerFunc != nil {
		return m.CheckAnswerFunc(ctx, questionID, answer)
	}
	panic("MockQuestionService.CheckAnswerFunc not implemented")
}
func (m *MockQuestionService) BankStatus() bank.Status {
	if m.BankStatusFunc != nil {
		return m.BankStatusFunc()
	}
	panic("MockQuestionService.BankStatusFunc not implemented")
}

// --- Helpers ---

func setupApp(svc service.QuestionService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	v := validation.NewValidator()
	handler.RegisterRoutes(app, handler.NewQuestionHandler(svc, v), middleware.NewValidationMiddleware(v))
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request, out interface{}) int {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), string(body))
	}
	return resp.StatusCode
}

var sampleQuestion = domain.NewQuestion("print(1+1)", "2", "easy", "math")

// --- Tests ---

func TestQuestionHandler_GetRandomQuestion(t *testing.T) {
	var gotCriteria domain.FilterCriteria
	app := setupApp(&MockQuestionService{
		PickRandomFunc: func(ctx context.Context, criteria domain.FilterCriteria) (*service.RandomPick, error) {
			gotCriteria = criteria
			return &service.RandomPick{Question: sampleQuestion, Fallback: true}, nil
		},
	})

	t.Run("explicit filters", func(t *testing.T) {
		var resp dto.QuestionResponse
		status := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/question?difficulty=hard&type=math", nil), &resp)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, domain.FilterCriteria{Difficulty: "hard", Type: "math"}, gotCriteria)
		assert.Equal(t, "print(1+1)", resp.Code)
		assert.Equal(t, "2", resp.Output)
		assert.True(t, resp.Fallback)
	})

	t.Run("filters default to all", func(t *testing.T) {
		status := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/next", nil), nil)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, domain.FilterCriteria{Difficulty: "all", Type: "all"}, gotCriteria)
	})
}

func TestQuestionHandler_ListQuestions(t *testing.T) {
	var gotForce bool
	app := setupApp(&MockQuestionService{
		ListMatchingFunc: func(ctx context.Context, criteria domain.FilterCriteria, force bool) ([]domain.Question, error) {
			gotForce = force
			if force {
				return nil, domain.NewSourceUnavailableError("Failed to read question sheet", nil)
			}
			return []domain.Question{sampleQuestion}, nil
		},
	})

	var items []dto.QuestionListItem
	status := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/questions?type=math", nil), &items)
	assert.Equal(t, http.StatusOK, status)
	assert.False(t, gotForce)
	require.Len(t, items, 1)
	assert.Equal(t, dto.QuestionListItem{
		ID: sampleQuestion.ID, Code: "print(1+1)", Output: "2", Difficulty: "easy", Type: "math",
	}, items[0])

	var errResp middleware.ErrorResponse
	status = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/questions?force=true", nil), &errResp)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.True(t, gotForce)
	assert.Equal(t, string(domain.CodeSourceUnavailable), errResp.Code)

	var valResp middleware.ValidationErrorResponse
	status = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/questions?force=maybe", nil), &valResp)
	assert.Equal(t, http.StatusBadRequest, status)
	require.Len(t, valResp.Errors, 1)
	assert.Equal(t, "force", valResp.Errors[0].Field)
}

func TestQuestionHandler_ListQuestions_EmptyIsArray(t *testing.T) {
	app := setupApp(&MockQuestionService{
		ListMatchingFunc: func(ctx context.Context, criteria domain.FilterCriteria, force bool) ([]domain.Question, error) {
			return []domain.Question{}, nil
		},
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/questions?difficulty=medium", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `[]`, string(body))
}

func TestQuestionHandler_Filters(t *testing.T) {
	app := setupApp(&MockQuestionService{
		FilterValuesFunc: func(ctx context.Context) (*service.FilterValues, error) {
			return &service.FilterValues{Difficulties: []string{"easy", "hard"}, Types: []string{}}, nil
		},
		ListDistinctValuesFunc: func(ctx context.Context, field domain.Field) ([]string, error) {
			return []string{"math"}, nil
		},
	})

	var filters dto.FiltersResponse
	status := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/filters", nil), &filters)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"easy", "hard"}, filters.Difficulties)
	assert.Equal(t, []string{}, filters.Types)

	var values dto.DistinctValuesResponse
	status = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/filters/type", nil), &values)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "type", values.Field)
	assert.Equal(t, []string{"math"}, values.Values)

	status = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/filters/code", nil), nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestQuestionHandler_CheckAnswer(t *testing.T) {
	app := setupApp(&MockQuestionService{
		CheckAnswerFunc: func(ctx context.Context, questionID, answer string) (*service.AnswerResult, error) {
			if questionID != sampleQuestion.ID {
				return nil, domain.NewQuestionNotFoundError(questionID)
			}
			return &service.AnswerResult{QuestionID: questionID, Correct: answer == "2", Expected: "2"}, nil
		},
	})

	newCheckRequest := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/check", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	var result dto.CheckAnswerResponse
	status := doRequest(t, app, newCheckRequest(`{"question_id":"`+sampleQuestion.ID+`","answer":"2"}`), &result)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, result.Correct)

	status = doRequest(t, app, newCheckRequest(`{"question_id":"nope","answer":"2"}`), nil)
	assert.Equal(t, http.StatusNotFound, status)

	var valResp middleware.ValidationErrorResponse
	status = doRequest(t, app, newCheckRequest(`{"answer":"2"}`), &valResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "question_id", valResp.Errors[0].Field)

	status = doRequest(t, app, newCheckRequest(`{not json`), nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHealthAndStatus(t *testing.T) {
	app := setupApp(&MockQuestionService{
		BankStatusFunc: func() bank.Status {
			return bank.Status{SnapshotID: "01JA", QuestionCount: 3, FetchCount: 2, LastError: "boom"}
		},
	})

	var health dto.HealthResponse
	assert.Equal(t, http.StatusOK, doRequest(t, app, httptest.NewRequest(http.MethodGet, "/health", nil), &health))
	assert.Equal(t, "ok", health.Status)

	var st dto.BankStatusResponse
	assert.Equal(t, http.StatusOK, doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/bank/status", nil), &st))
	assert.Equal(t, "01JA", st.SnapshotID)
	assert.Equal(t, 3, st.QuestionCount)
	assert.Equal(t, "boom", st.LastError)
}
