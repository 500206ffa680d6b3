package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"careercenter_backend/internal/models"
	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"
)

// fakeLLM подменяет провайдера: возвращает заранее заданный ответ
// и запоминает полученные сообщения
type fakeLLM struct {
	response string
	err      error
	messages []llms.MessageContent
}

func (f *fakeLLM) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.response}},
	}, nil
}

func (f *fakeLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	resp, err := f.GenerateContent(ctx, []llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, prompt)}, options...)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Content, nil
}

// fakeTouchRepo хранит один отклик в памяти
type fakeTouchRepo struct {
	touch         *models.VacancyTouch
	updatedFields bool
}

func (f *fakeTouchRepo) Create(touch *models.VacancyTouch) error { return nil }

func (f *fakeTouchRepo) FindByID(id string) (*models.VacancyTouch, error) {
	return f.touch, nil
}

func (f *fakeTouchRepo) FindByIDWithLinks(id string) (*models.VacancyTouch, error) {
	return f.touch, nil
}

func (f *fakeTouchRepo) FindRawByVacancyIDs(vacancyIDs []string) ([]map[string]interface{}, error) {
	return nil, nil
}

func (f *fakeTouchRepo) FindRawByStudentsAndVacancies(studentIDs, vacancyIDs []string) ([]map[string]interface{}, error) {
	return nil, nil
}

func (f *fakeTouchRepo) UpdateAIFields(id string, summary string, meetsCriteria int, motivation int) error {
	f.updatedFields = true
	s := summary
	f.touch.AISummary = &s
	mc := meetsCriteria
	f.touch.MeetsCriteriaRating = &mc
	mv := motivation
	f.touch.MotivationRating = &mv
	return nil
}

func testTouch(companyID string) *models.VacancyTouch {
	return &models.VacancyTouch{
		BaseModel: models.BaseModel{ID: "touch-1"},
		VacancyID: "vac-1",
		StudentID: "stu-1",
		Vacancy: &models.Vacancy{
			BaseModel:    models.BaseModel{ID: "vac-1"},
			CompanyID:    companyID,
			Title:        "Go разработчик",
			Description:  "Бэкенд на Go",
			Requirements: "Go, PostgreSQL",
		},
		Resume: &models.Resume{
			BaseModel: models.BaseModel{ID: "res-1"},
			StudentID: "stu-1",
			Title:     "Junior Go Developer",
			Skills:    datatypes.JSONSlice[string]{"Go", "SQL"},
			Languages: datatypes.JSONSlice[string]{"Русский", "English"},
		},
		AdditionalInfo: "Хочу работать именно у вас",
	}
}

func TestGenerateSummary_Success(t *testing.T) {
	repo := &fakeTouchRepo{touch: testTouch("company-1")}
	llm := &fakeLLM{response: `{"ai_summary": "Сильный кандидат.", "meets_criteria_rating": 80, "motivation_rating": 90}`}
	svc := NewAIService(&gorm.DB{}, llm, "gpt-3.5-turbo", repo)

	updated, err := svc.GenerateSummary(context.Background(), "company-1", "touch-1")
	require.NoError(t, err)
	assert.True(t, repo.updatedFields)
	require.NotNil(t, updated.AISummary)
	assert.Equal(t, "Сильный кандидат.", *updated.AISummary)
	assert.Equal(t, 80, *updated.MeetsCriteriaRating)
	assert.Equal(t, 90, *updated.MotivationRating)

	// Промпт собран из вакансии и резюме
	require.Len(t, llm.messages, 2)
	human := llm.messages[1].Parts[0].(llms.TextContent).Text
	assert.Contains(t, human, "Go разработчик")
	assert.Contains(t, human, "Go, SQL")
	assert.Contains(t, human, "Хочу работать именно у вас")
}

func TestGenerateSummary_NotOwner(t *testing.T) {
	repo := &fakeTouchRepo{touch: testTouch("company-1")}
	svc := NewAIService(&gorm.DB{}, &fakeLLM{}, "gpt-3.5-turbo", repo)

	_, err := svc.GenerateSummary(context.Background(), "company-2", "touch-1")
	assert.ErrorIs(t, err, apperrors.ErrVacancyNotOwned)
	assert.False(t, repo.updatedFields)
}

func TestGenerateSummary_LinkageMissing(t *testing.T) {
	touch := testTouch("company-1")
	touch.Resume = nil
	svc := NewAIService(&gorm.DB{}, &fakeLLM{}, "gpt-3.5-turbo", &fakeTouchRepo{touch: touch})

	_, err := svc.GenerateSummary(context.Background(), "company-1", "touch-1")
	assert.ErrorIs(t, err, apperrors.ErrTouchLinkageMissing)
}

func TestGenerateSummary_AINotConfigured(t *testing.T) {
	svc := NewAIService(&gorm.DB{}, nil, "gpt-3.5-turbo", &fakeTouchRepo{touch: testTouch("company-1")})

	_, err := svc.GenerateSummary(context.Background(), "company-1", "touch-1")
	assert.ErrorIs(t, err, apperrors.ErrAINotConfigured)
}

func TestGenerateSummary_DatabaseNotConfigured(t *testing.T) {
	svc := NewAIService(nil, &fakeLLM{}, "gpt-3.5-turbo", &fakeTouchRepo{touch: testTouch("company-1")})

	_, err := svc.GenerateSummary(context.Background(), "company-1", "touch-1")
	assert.ErrorIs(t, err, apperrors.ErrDatabaseNotConfigured)
}

func TestGenerateSummary_UnparsableAnswer(t *testing.T) {
	repo := &fakeTouchRepo{touch: testTouch("company-1")}
	llm := &fakeLLM{response: "Кандидат хороший, берите."}
	svc := NewAIService(&gorm.DB{}, llm, "gpt-3.5-turbo", repo)

	_, err := svc.GenerateSummary(context.Background(), "company-1", "touch-1")
	require.Error(t, err)
	assert.False(t, repo.updatedFields)
}

func TestChat_NotConfigured(t *testing.T) {
	svc := NewAIService(nil, nil, "gpt-3.5-turbo", &fakeTouchRepo{})

	resp := svc.Chat(context.Background(), &dto.ChatRequest{Query: "привет"})
	assert.Equal(t, "AI чат временно недоступен.", resp.Response)
	assert.Nil(t, resp.Action)
}

func TestChat_ProviderError(t *testing.T) {
	llm := &fakeLLM{err: errors.New("rate limited")}
	svc := NewAIService(nil, llm, "gpt-3.5-turbo", &fakeTouchRepo{})

	// Ошибка провайдера не должна превращаться в ошибку HTTP
	resp := svc.Chat(context.Background(), &dto.ChatRequest{Query: "привет"})
	assert.Equal(t, "Извините, произошла ошибка.", resp.Response)
	assert.Nil(t, resp.Action)
}

func TestChat_Success(t *testing.T) {
	llm := &fakeLLM{response: "Посмотрите раздел вакансий."}
	svc := NewAIService(nil, llm, "gpt-3.5-turbo", &fakeTouchRepo{})

	resp := svc.Chat(context.Background(), &dto.ChatRequest{Query: "где искать стажировки?"})
	assert.Equal(t, "Посмотрите раздел вакансий.", resp.Response)

	human := llm.messages[1].Parts[0].(llms.TextContent).Text
	assert.Equal(t, "где искать стажировки?", human)
}

func TestParseAnalysis(t *testing.T) {
	analysis, err := parseAnalysis(`{"ai_summary": "ok", "meets_criteria_rating": 70, "motivation_rating": 55}`)
	require.NoError(t, err)
	assert.Equal(t, "ok", analysis.AISummary)
	assert.Equal(t, 70, analysis.MeetsCriteriaRating)
	assert.Equal(t, 55, analysis.MotivationRating)
}

func TestParseAnalysis_MarkdownWrapped(t *testing.T) {
	content := "```json\n{\"ai_summary\": \"ok\", \"meets_criteria_rating\": 70, \"motivation_rating\": 55}\n```"
	analysis, err := parseAnalysis(content)
	require.NoError(t, err)
	assert.Equal(t, "ok", analysis.AISummary)
}

func TestParseAnalysis_MissingField(t *testing.T) {
	_, err := parseAnalysis(`{"ai_summary": "ok", "meets_criteria_rating": 70}`)
	assert.Error(t, err)
}

func TestParseAnalysis_NotJSON(t *testing.T) {
	_, err := parseAnalysis("просто текст без JSON")
	assert.Error(t, err)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, extractJSON("вот ответ: ```{\"a\": 1}``` конец"))
	assert.Equal(t, "no braces", extractJSON("no braces"))
}

func TestBuildAnalysisPrompt_Defaults(t *testing.T) {
	vacancy := &models.Vacancy{Title: "Аналитик"}
	resume := &models.Resume{Title: "Junior"}

	prompt := buildAnalysisPrompt(vacancy, resume, "")
	assert.Contains(t, prompt, "N/A")
	assert.Contains(t, prompt, "Кандидат не предоставил дополнительной информации.")
	assert.True(t, strings.Contains(prompt, "meets_criteria_rating"))
	assert.True(t, strings.Contains(prompt, "motivation_rating"))
}
