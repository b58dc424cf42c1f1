package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/GoldenRodger5/nutrivize-sub004/llm"
	"github.com/GoldenRodger5/nutrivize-sub004/logger"
	"github.com/GoldenRodger5/nutrivize-sub004/models"
)

// NutritionService fills in missing nutrition data for catalog foods:
// Open Food Facts first, LLM estimation as fallback.
type NutritionService struct {
	llmClient *llm.Client
}

func NewNutritionService() *NutritionService {
	return &NutritionService{
		llmClient: llm.NewClient(),
	}
}

// FetchFoodNutrition attempts to fetch nutrition data for a food.
func (s *NutritionService) FetchFoodNutrition(food *models.FoodItem) error {
	err := s.fetchFromOpenFoodFacts(food)
	if err == nil && food.NutritionVerified {
		logger.Info("Nutrition fetched from Open Food Facts", "food", food.Name)
		return nil
	}

	if !s.llmClient.IsConfigured() {
		return fmt.Errorf("no nutrition source available for %q: %w", food.Name, err)
	}
	return s.estimateWithLLM(food)
}

func (s *NutritionService) fetchFromOpenFoodFacts(food *models.FoodItem) error {
	queries := []string{}

	name := strings.TrimSpace(food.Name)
	brand := strings.TrimSpace(food.Brand)

	if brand != "" {
		full := name
		if !strings.HasPrefix(strings.ToLower(name), strings.ToLower(brand)) {
			full = brand + " " + name
		}
		queries = append(queries, full, name)
	} else if name != "" {
		queries = append(queries, name)
	}

	client := &http.Client{Timeout: 2 * time.Second}

	for _, query := range queries {
		logger.Info("Searching Open Food Facts", "query", query)
		url := fmt.Sprintf("https://world.openfoodfacts.org/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1",
			strings.ReplaceAll(query, " ", "+"))

		resp, err := client.Get(url)
		if err != nil {
			logger.Warn("Open Food Facts search failed or timed out", "query", query, "error", err)
			continue
		}

		var result struct {
			Products []struct {
				Nutriments struct {
					EnergyKcal100g    json.Number `json:"energy-kcal_100g"`
					Proteins100g      json.Number `json:"proteins_100g"`
					Carbohydrates100g json.Number `json:"carbohydrates_100g"`
					Fat100g           json.Number `json:"fat_100g"`
					Fiber100g         json.Number `json:"fiber_100g"`
					Sugars100g        json.Number `json:"sugars_100g"`
					Sodium100g        json.Number `json:"sodium_100g"`
				} `json:"nutriments"`
			} `json:"products"`
		}

		err = json.NewDecoder(resp.Body).Decode(&result)
		resp.Body.Close()
		if err != nil {
			logger.Warn("Failed to decode Open Food Facts response", "query", query, "error", err)
			continue
		}

		if len(result.Products) == 0 {
			continue
		}

		n := result.Products[0].Nutriments
		kcal, _ := n.EnergyKcal100g.Float64()
		if kcal <= 0 {
			logger.Warn("Open Food Facts returned zero calories", "query", query)
			continue
		}

		food.Calories = kcal
		food.Protein, _ = n.Proteins100g.Float64()
		food.Carbs, _ = n.Carbohydrates100g.Float64()
		food.Fat, _ = n.Fat100g.Float64()
		food.Fiber, _ = n.Fiber100g.Float64()
		food.Sugar, _ = n.Sugars100g.Float64()
		sodiumG, _ := n.Sodium100g.Float64()
		food.Sodium = sodiumG * 1000 // OFF reports grams, we store mg
		food.NutritionVerified = true

		logger.Info("Nutrition fetched from Open Food Facts", "food", food.Name, "query", query)
		return nil
	}

	return fmt.Errorf("no valid products found on Open Food Facts for any tried queries")
}

func (s *NutritionService) estimateWithLLM(food *models.FoodItem) error {
	logger.Info("Using LLM to estimate nutrition", "food", food.Name)

	serving := food.Serving
	if serving == "" {
		serving = "100g"
	}

	prompt := fmt.Sprintf(`Provide nutritional information per %s for this food.
Food: %s (Brand: %s)

Return ONLY a JSON object:
{
  "calories": float,
  "protein": float,
  "carbs": float,
  "fat": float,
  "fiber": float,
  "sugar": float,
  "sodium_mg": float
}`, serving, food.Name, orUnknown(food.Brand))

	resp, err := s.llmClient.Chat([]llm.Message{
		{Role: "system", Content: "You are a nutrition expert. Provide estimated nutritional data for the requested serving. If brand info is unavailable, use average values for the food."},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return err
	}

	// Clean output from possible markdown code blocks
	cleanResp := strings.TrimSpace(resp)
	if strings.HasPrefix(cleanResp, "```json") {
		cleanResp = strings.TrimPrefix(cleanResp, "```json")
		cleanResp = strings.TrimSuffix(cleanResp, "```")
	}

	var data struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
		Fiber    float64 `json:"fiber"`
		Sugar    float64 `json:"sugar"`
		SodiumMG float64 `json:"sodium_mg"`
	}

	if err := json.Unmarshal([]byte(cleanResp), &data); err != nil {
		return err
	}

	// Sanity checks: max possible calories in 100g (pure fat) is ~900,
	// and no macro can exceed 100g per 100g.
	if data.Calories > 900 {
		logger.Warn("Implausible calorie estimate, capping at 900", "val", data.Calories)
		data.Calories = 900
	}
	for _, v := range []*float64{&data.Protein, &data.Carbs, &data.Fat, &data.Fiber, &data.Sugar} {
		if *v > 100 {
			*v = 100
		}
		if *v < 0 {
			*v = 0
		}
	}
	if data.SodiumMG < 0 {
		data.SodiumMG = 0
	}

	food.Calories = data.Calories
	food.Protein = data.Protein
	food.Carbs = data.Carbs
	food.Fat = data.Fat
	food.Fiber = data.Fiber
	food.Sugar = data.Sugar
	food.Sodium = data.SodiumMG
	food.NutritionVerified = false // it's an estimation

	logger.Info("Nutrition estimated", "food", food.Name, "kcal", food.Calories)
	return nil
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
