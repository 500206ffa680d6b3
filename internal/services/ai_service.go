package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"gorm.io/gorm"

	"careercenter_backend/internal/logger"
	"careercenter_backend/internal/models"
	"careercenter_backend/internal/repositories"
	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"
)

const analysisSystemPrompt = "Ты — опытный HR-аналитик, который помогает компаниям оценивать кандидатов. Твой ответ всегда должен быть в формате JSON."

const chatSystemPrompt = "Ты — AI-ассистент карьерного центра. Помогай студентам с поиском вакансий и стажировок, а компаниям — с подбором кандидатов. Отвечай кратко и по делу, на русском языке."

const chatUnavailableMessage = "AI чат временно недоступен."
const chatApologyMessage = "Извините, произошла ошибка."

type AIService interface {
	GenerateSummary(ctx context.Context, callerID, touchID string) (*models.VacancyTouch, error)
	Chat(ctx context.Context, req *dto.ChatRequest) *dto.ChatResponse
}

type AIServiceImpl struct {
	db        *gorm.DB
	llm       llms.Model
	model     string
	touchRepo repositories.TouchRepository
}

func NewAIService(db *gorm.DB, llm llms.Model, model string, touchRepo repositories.TouchRepository) AIService {
	return &AIServiceImpl{db: db, llm: llm, model: model, touchRepo: touchRepo}
}

// GenerateSummary - AI-анализ отклика: краткое резюме по кандидату
// и две оценки 1-100. Результат сохраняется в отклике.
func (s *AIServiceImpl) GenerateSummary(ctx context.Context, callerID, touchID string) (*models.VacancyTouch, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}
	if s.llm == nil {
		return nil, apperrors.ErrAINotConfigured
	}

	touch, err := s.touchRepo.FindByIDWithLinks(touchID)
	if err != nil {
		if errors.Is(err, repositories.ErrTouchNotFound) {
			return nil, apperrors.ErrTouchNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if touch.Vacancy == nil || touch.Resume == nil {
		return nil, apperrors.ErrTouchLinkageMissing
	}
	if touch.Vacancy.CompanyID != callerID {
		return nil, apperrors.ErrVacancyNotOwned
	}

	prompt := buildAnalysisPrompt(touch.Vacancy, touch.Resume, touch.AdditionalInfo)

	resp, err := s.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, analysisSystemPrompt),
			llms.TextParts(llms.ChatMessageTypeHuman, prompt),
		},
		llms.WithModel(s.model),
		llms.WithTemperature(0.5),
	)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, apperrors.ErrAIParse(errors.New("empty completion"))
	}

	analysis, err := parseAnalysis(resp.Choices[0].Content)
	if err != nil {
		logger.CtxWithError(ctx, "Не удалось разобрать ответ AI", err, "touch_id", touchID)
		return nil, apperrors.ErrAIParse(err)
	}

	if err := s.touchRepo.UpdateAIFields(touchID, analysis.AISummary, analysis.MeetsCriteriaRating, analysis.MotivationRating); err != nil {
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.touchRepo.FindByID(touchID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

// Chat - диалог с ассистентом. Ошибки провайдера никогда не
// превращаются в HTTP-ошибку, фронтенд всегда получает текст.
func (s *AIServiceImpl) Chat(ctx context.Context, req *dto.ChatRequest) *dto.ChatResponse {
	if s.llm == nil {
		return &dto.ChatResponse{Response: chatUnavailableMessage}
	}

	resp, err := s.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, chatSystemPrompt),
			llms.TextParts(llms.ChatMessageTypeHuman, req.Query),
		},
		llms.WithModel(s.model),
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(200),
	)
	if err != nil {
		logger.CtxWithError(ctx, "Ошибка AI-чата", err)
		return &dto.ChatResponse{Response: chatApologyMessage}
	}

	content := ""
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Content
	}
	return &dto.ChatResponse{Response: content}
}

func buildAnalysisPrompt(vacancy *models.Vacancy, resume *models.Resume, additionalInfo string) string {
	if additionalInfo == "" {
		additionalInfo = "Кандидат не предоставил дополнительной информации."
	}

	return fmt.Sprintf(`Проанализируй отклик студента на вакансию.

**Информация о вакансии:**
- Название: %s
- Описание: %s
- Требования: %s

**Информация о кандидате из резюме:**
- Заголовок резюме: %s
- Образование: %s
- Опыт работы: %s
- Навыки: %s
- Языки: %s
- Достижения: %s

**Сопроводительная информация от студента:**
%s

**Твоя задача:**
Верни JSON объект со следующими полями:
1. "ai_summary": Краткое (3-4 предложения) и нейтральное резюме по кандидату. Опиши, насколько его опыт и навыки соответствуют требованиям вакансии.
2. "meets_criteria_rating": Оценка от 1 до 100, насколько кандидат соответствует **техническим требованиям** вакансии. Оценивай строго по совпадению навыков и опыта.
3. "motivation_rating": Оценка от 1 до 100, насколько кандидат кажется мотивированным, основываясь на его сопроводительной информации и достижениях.

Пример JSON ответа:
{
  "ai_summary": "Студент с опытом в Python и SQL, что частично соответствует требованиям. Проекты в портфолио релевантны, но не хватает опыта работы с FastAPI. Мотивационное письмо демонстрирует явный интерес к задачам компании.",
  "meets_criteria_rating": 75,
  "motivation_rating": 85
}`,
		valueOrNA(vacancy.Title),
		valueOrNA(vacancy.Description),
		valueOrNA(vacancy.Requirements),
		valueOrNA(resume.Title),
		valueOrNA(resume.Education),
		valueOrNA(resume.Experience),
		strings.Join(resume.Skills, ", "),
		strings.Join(resume.Languages, ", "),
		valueOrNA(resume.Achievements),
		additionalInfo,
	)
}

func valueOrNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

type aiAnalysis struct {
	AISummary           string
	MeetsCriteriaRating int
	MotivationRating    int
}

// parseAnalysis строго разбирает JSON-ответ модели: все три поля
// обязательны, иначе результат не сохраняется
func parseAnalysis(content string) (*aiAnalysis, error) {
	var payload struct {
		AISummary           *string `json:"ai_summary"`
		MeetsCriteriaRating *int    `json:"meets_criteria_rating"`
		MotivationRating    *int    `json:"motivation_rating"`
	}

	if err := json.Unmarshal([]byte(extractJSON(content)), &payload); err != nil {
		return nil, err
	}
	if payload.AISummary == nil || payload.MeetsCriteriaRating == nil || payload.MotivationRating == nil {
		return nil, errors.New("incomplete analysis payload")
	}

	return &aiAnalysis{
		AISummary:           *payload.AISummary,
		MeetsCriteriaRating: *payload.MeetsCriteriaRating,
		MotivationRating:    *payload.MotivationRating,
	}, nil
}

// extractJSON срезает markdown-обёртку, в которую модели любят
// заворачивать JSON
func extractJSON(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return content
	}
	return content[start : end+1]
}
