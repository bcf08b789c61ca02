package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/rentfolio/backend/internal/application/adapter"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

// GeminiService implements the PortfolioAnalysisService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable reports whether the Gemini service is configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Analyze produces a written portfolio analysis from the summary figures.
func (s *GeminiService) Analyze(ctx context.Context, summary adapter.PortfolioSummary) (*adapter.AnalysisResult, error) {
	if !s.IsAvailable() {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeAIServiceUnavailable,
			"gemini service is not configured",
			domainerror.ErrAIServiceUnavailable,
		)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.4)

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(summary)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	return &adapter.AnalysisResult{
		Summary: text,
		Model:   s.modelName,
	}, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(summary adapter.PortfolioSummary) string {
	var sb strings.Builder

	sb.WriteString("You are a real estate investment advisor for small landlords. ")
	sb.WriteString("Analyze the rental portfolio below and write a short, practical assessment: ")
	sb.WriteString("overall financial health, the most important risk, and one concrete next step. ")
	sb.WriteString("Keep it under 200 words and avoid generic filler.\n\n")

	sb.WriteString("Portfolio:\n")
	fmt.Fprintf(&sb, "- Properties: %d\n", summary.TotalProperties)
	fmt.Fprintf(&sb, "- All-time income: %s\n", summary.TotalIncome.StringFixed(2))
	fmt.Fprintf(&sb, "- All-time expenses: %s\n", summary.TotalExpenses.StringFixed(2))
	fmt.Fprintf(&sb, "- Expected monthly rental income: %s\n", summary.MonthlyIncome.StringFixed(2))
	fmt.Fprintf(&sb, "- Portfolio occupancy: %s%%\n", summary.OccupancyRate.StringFixed(1))

	return sb.String()
}

// extractText pulls the plain text out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		return "", fmt.Errorf("no text content in gemini response")
	}
	return result, nil
}
