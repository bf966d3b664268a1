// ABOUTME: AI-powered generator for realistic demo orders.
// ABOUTME: Uses OpenAI when a key is configured, static data otherwise.

package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"github.com/plumline/listtable/internal/store"
)

// Generator creates fake orders using OpenAI or falls back to static data.
type Generator struct {
	client *openai.Client
	useAI  bool
	model  string
}

// NewGenerator creates a generator, loading the API key from .env if
// available.
func NewGenerator() *Generator {
	g := &Generator{}

	// Try to load .env from current dir or parent dirs
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}

	// Also check home directory
	if home, err := os.UserHomeDir(); err == nil {
		godotenv.Load(filepath.Join(home, ".env"))
	}

	g.model = os.Getenv("OPENAI_MODEL")
	if g.model == "" {
		g.model = "gpt-5-mini"
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey != "" {
		g.client = openai.NewClient(apiKey)
		g.useAI = true
		slog.Info("OpenAI API key found, using AI-generated orders", "model", g.model)
	} else {
		slog.Info("no OPENAI_API_KEY found, using static fallback orders")
	}

	return g
}

// orderData is the JSON shape the model is asked for, one object per order.
type orderData struct {
	OrderNumber      string  `json:"order_number"`
	Customer         string  `json:"customer"`
	Status           string  `json:"status"`
	Country          string  `json:"country"`
	TotalCents       int64   `json:"total_cents"`
	Currency         string  `json:"currency"`
	DiscountRate     float64 `json:"discount_rate"`
	DiscountRateType string  `json:"discount_rate_type"`
	ItemsCount       int64   `json:"items_count"`
	Website          string  `json:"website"`
	IsTest           bool    `json:"is_test"`
	FileSizeBytes    int64   `json:"file_size_bytes"`
	DaysAgo          int     `json:"days_ago"`
}

// Generate creates count fake orders, assigning fresh ids and timestamps.
func (g *Generator) Generate(ctx context.Context, count int) ([]store.Order, error) {
	data := staticOrders(count)

	if g.useAI {
		slog.Info("generating orders via AI", "count", count)
		generated, err := g.generateOrders(ctx, count)
		if err != nil {
			slog.Warn("AI generation failed, falling back to static orders", "error", err)
		} else if len(generated) > 0 {
			data = generated
		}
	}

	now := time.Now()
	orders := make([]store.Order, 0, len(data))
	for _, d := range data {
		orders = append(orders, store.Order{
			ID:               uuid.NewString(),
			OrderNumber:      d.OrderNumber,
			Customer:         d.Customer,
			Status:           d.Status,
			Country:          d.Country,
			TotalSpent:       d.TotalCents,
			CurrencyCode:     d.Currency,
			DiscountRate:     d.DiscountRate,
			DiscountRateType: d.DiscountRateType,
			ItemsCount:       d.ItemsCount,
			Website:          d.Website,
			IsTest:           d.IsTest,
			FileSize:         d.FileSizeBytes,
			CreatedAt:        now.AddDate(0, 0, -d.DaysAgo).Unix(),
		})
	}
	return orders, nil
}

func (g *Generator) generateOrders(ctx context.Context, count int) ([]orderData, error) {
	prompt := fmt.Sprintf(`Generate %d realistic fake e-commerce orders for a store admin screen. Include a mix of:
- Completed, pending, processing, refunded, failed, and cancelled orders
- Customers from several countries (use ISO 3166-1 alpha-2 codes)
- A few test-mode orders and a few with discounts

Return as JSON array with objects containing: order_number (like "ORD-1042"), customer (full name),
status, country, total_cents (integer, smallest currency unit), currency (ISO 4217 code),
discount_rate (number), discount_rate_type ("percent" or "flat"), items_count (integer),
website (customer site URL or empty), is_test (boolean), file_size_bytes (invoice size, integer),
days_ago (integer 0-90, how long ago the order was placed).
Make amounts and names varied and realistic. Use USD, EUR, GBP, and JPY currencies.`, count)

	return callOpenAI[[]orderData](ctx, g.client, g.model, prompt)
}

func callOpenAI[T any](ctx context.Context, client *openai.Client, model, prompt string) (T, error) {
	var result T

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a data generator. Always respond with valid JSON only, no markdown or explanation.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return result, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return result, fmt.Errorf("no response from OpenAI")
	}

	content := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return result, nil
}
