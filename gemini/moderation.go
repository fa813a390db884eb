package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	language "cloud.google.com/go/language/apiv1"
	languagepb "cloud.google.com/go/language/apiv1/languagepb"

	"github.com/datar-psa/gometrics/api"
)

// GoogleLanguageProvider implements api.ModerationProvider using Google Cloud Natural Language API client
type GoogleLanguageProvider struct {
	client *language.Client
	cfg    config
}

// NewGoogleLanguageProvider creates a new provider using a preconfigured *language.Client (auth handled by caller)
func NewGoogleLanguageProvider(client *language.Client, opts ...Option) *GoogleLanguageProvider {
	return &GoogleLanguageProvider{client: client, cfg: newConfig(opts)}
}

// Moderate analyzes content for safety using Google Cloud Natural Language API
func (p *GoogleLanguageProvider) Moderate(ctx context.Context, content string) (*api.ModerationResult, error) {
	if p.client == nil {
		return nil, fmt.Errorf("%w: language client is required", api.ErrInvalidConfiguration)
	}

	req := &languagepb.ModerateTextRequest{
		Document: &languagepb.Document{
			Type: languagepb.Document_PLAIN_TEXT,
			Source: &languagepb.Document_Content{
				Content: content,
			},
		},
	}

	resp, err := p.client.ModerateText(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("moderate text failed: %w", err)
	}

	categories := make([]api.ModerationCategory, 0, len(resp.ModerationCategories))
	for _, c := range resp.ModerationCategories {
		categories = append(categories, api.ModerationCategory{
			Name:       mapCategoryName(c.Name),
			Confidence: float64(c.Confidence),
		})
	}

	p.cfg.logger.Debug("moderated text",
		slog.Int("content_length", len(content)),
		slog.Int("categories", len(categories)))

	return &api.ModerationResult{Categories: categories}, nil
}

// ModerationScorer turns moderation results into per-text scores: the
// confidence of one category. The scores can be fed to binary classification
// metrics and AUROC to evaluate the moderation model against labelled texts.
type ModerationScorer struct {
	provider api.ModerationProvider
	category string
	cfg      config
}

// NewModerationScorer creates a score source for one of api.ModerationCategories.
func NewModerationScorer(provider api.ModerationProvider, category string, opts ...Option) (*ModerationScorer, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: moderation provider is required", api.ErrInvalidConfiguration)
	}
	if !slices.Contains(api.ModerationCategories, category) {
		return nil, fmt.Errorf("%w: unknown moderation category %q", api.ErrInvalidConfiguration, category)
	}
	return &ModerationScorer{provider: provider, category: category, cfg: newConfig(opts)}, nil
}

// Scores implements api.ScoreSource. A category missing from a result scores 0.
func (s *ModerationScorer) Scores(ctx context.Context, texts []string) ([]float64, error) {
	scores := make([]float64, len(texts))
	for i, text := range texts {
		result, err := s.provider.Moderate(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("failed to moderate text %d: %w", i, err)
		}
		scores[i] = result.Confidence(s.category)
	}
	s.cfg.logger.Debug("moderation scores",
		slog.String("category", s.category),
		slog.Int("texts", len(texts)))
	return scores, nil
}

var (
	_ api.ModerationProvider = (*GoogleLanguageProvider)(nil)
	_ api.ScoreSource        = (*ModerationScorer)(nil)
)

// categoryNames maps Google Cloud Natural Language API category names that are
// not valid identifiers to developer-friendly names
var categoryNames = map[string]string{
	"Death, Harm & Tragedy": "DeathHarmTragedy",
	"Firearms & Weapons":    "FirearmsWeapons",
	"Public Safety":         "PublicSafety",
	"Religion & Belief":     "ReligionBelief",
	"Illicit Drugs":         "IllicitDrugs",
	"War & Conflict":        "WarConflict",
}

// mapCategoryName returns the developer-friendly name, or the original name if not recognized
func mapCategoryName(googleCategory string) string {
	if name, ok := categoryNames[googleCategory]; ok {
		return name
	}
	return googleCategory
}
