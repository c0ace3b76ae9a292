package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/talait/translate-api/internal/model"
	"github.com/talait/translate-api/internal/upstream"
)

var (
	ErrInvalidInput       = errors.New("text and direction are required")
	ErrUnexpectedResponse = errors.New("unexpected translation provider response")
)

// Translator is the upstream call the translate service depends on.
type Translator interface {
	Translate(ctx context.Context, text string, direction model.Direction) ([]upstream.Result, error)
}

// TranslateService validates translate requests, forwards them upstream and
// extracts the translated text from the provider's response.
type TranslateService struct {
	translator Translator
}

// NewTranslateService creates a new TranslateService.
func NewTranslateService(translator Translator) *TranslateService {
	return &TranslateService{translator: translator}
}

// Translate handles one translation request. Input is validated before any
// network call. The first result's translation_text is preferred, with
// generated_text as a fallback; neither present means the provider response
// shape was not recognized.
func (s *TranslateService) Translate(ctx context.Context, req model.TranslateRequest) (model.TranslateResponse, error) {
	if req.Text == "" || !req.Direction.Valid() {
		return model.TranslateResponse{}, ErrInvalidInput
	}

	results, err := s.translator.Translate(ctx, req.Text, req.Direction)
	if err != nil {
		return model.TranslateResponse{}, fmt.Errorf("translation failed: %w", err)
	}

	if len(results) > 0 {
		if text := results[0].TranslationText; text != "" {
			return model.TranslateResponse{Translation: text}, nil
		}
		if text := results[0].GeneratedText; text != "" {
			return model.TranslateResponse{Translation: text}, nil
		}
	}

	return model.TranslateResponse{}, ErrUnexpectedResponse
}
