package services

import (
	"context"
	"strings"

	apperrors "github.com/WanderPlan/wanderplan-backend/errors"
	"github.com/WanderPlan/wanderplan-backend/internal/schema"
	"github.com/WanderPlan/wanderplan-backend/logger"
	"github.com/WanderPlan/wanderplan-backend/pkg/llm"
	"github.com/WanderPlan/wanderplan-backend/types"
)

// TripInfoService parses free-text trip descriptions into structured
// parameters that pre-fill the trip creation form. Extraction is best effort
// per field; only an unusable response as a whole fails.
type TripInfoService struct {
	llmClient llm.ClientInterface
	model     string
}

func NewTripInfoService(llmClient llm.ClientInterface, model string) *TripInfoService {
	return &TripInfoService{llmClient: llmClient, model: model}
}

// Extract pulls destination, dates, budget and preferences from free text.
// Fields the model cannot confidently extract come back nil.
func (s *TripInfoService) Extract(ctx context.Context, text string) (*types.ExtractedTripInfo, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.EmptyInput("text")
	}

	raw, err := s.llmClient.Complete(ctx, llm.CompletionRequest{
		Model:        s.model,
		SystemPrompt: tripInfoSystemPrompt,
		UserPrompt:   text,
		Temperature:  extractionTemperature,
	})
	if err != nil {
		return nil, apperrors.GenerationFailed(err)
	}

	info, err := schema.DecodeTripInfo(raw)
	if err != nil {
		logger.GetLogger().Errorw("Trip info extraction produced unusable output", "error", err)
		return nil, apperrors.MalformedResponse(err.Error())
	}
	return info, nil
}
