package jobs

import (
	"sync"

	"github.com/GoldenRodger5/nutrivize-sub004/database"
	"github.com/GoldenRodger5/nutrivize-sub004/logger"
	"github.com/GoldenRodger5/nutrivize-sub004/models"
	"github.com/GoldenRodger5/nutrivize-sub004/services"
)

// EnrichJob represents a job to fetch nutrition data for a catalog food.
type EnrichJob struct {
	FoodItemID uint
}

// FoodUpdate is sent to SSE subscribers when a food's nutrition is updated.
type FoodUpdate struct {
	FoodItemID uint    `json:"food_item_id"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
	Fiber      float64 `json:"fiber"`
	Sugar      float64 `json:"sugar"`
	Sodium     float64 `json:"sodium"`
	Verified   bool    `json:"nutrition_verified"`
}

// EnrichWorker processes nutrition enrichment jobs in the background.
type EnrichWorker struct {
	jobs         chan EnrichJob
	nutritionSvc *services.NutritionService
	subscribers  map[chan FoodUpdate]bool
	subMux       sync.RWMutex
}

var (
	worker     *EnrichWorker
	workerOnce sync.Once
)

// GetWorker returns the singleton EnrichWorker instance.
func GetWorker() *EnrichWorker {
	workerOnce.Do(func() {
		worker = &EnrichWorker{
			jobs:         make(chan EnrichJob, 100),
			nutritionSvc: services.NewNutritionService(),
			subscribers:  make(map[chan FoodUpdate]bool),
		}
		go worker.run()
		logger.Info("Nutrition enrichment worker started")
	})
	return worker
}

// Enqueue adds an enrichment job to the queue.
func (w *EnrichWorker) Enqueue(foodItemID uint) {
	select {
	case w.jobs <- EnrichJob{FoodItemID: foodItemID}:
		logger.Info("Enrichment job enqueued", "food_item_id", foodItemID)
	default:
		logger.Warn("Enrichment queue full, dropping job", "food_item_id", foodItemID)
	}
}

// Subscribe registers a channel to receive food updates.
func (w *EnrichWorker) Subscribe(ch chan FoodUpdate) {
	w.subMux.Lock()
	defer w.subMux.Unlock()
	w.subscribers[ch] = true
}

// Unsubscribe removes a channel from food updates.
func (w *EnrichWorker) Unsubscribe(ch chan FoodUpdate) {
	w.subMux.Lock()
	defer w.subMux.Unlock()
	delete(w.subscribers, ch)
	close(ch)
}

func (w *EnrichWorker) run() {
	for job := range w.jobs {
		w.processJob(job)
	}
}

func (w *EnrichWorker) processJob(job EnrichJob) {
	logger.Info("Processing enrichment job", "food_item_id", job.FoodItemID)

	var food models.FoodItem
	if err := database.DB.First(&food, job.FoodItemID).Error; err != nil {
		logger.Error("Failed to fetch food for enrichment", "food_item_id", job.FoodItemID, "error", err)
		return
	}

	if food.NutritionVerified {
		logger.Info("Food already has verified nutrition, skipping", "food_item_id", job.FoodItemID)
		return
	}

	if err := w.nutritionSvc.FetchFoodNutrition(&food); err != nil {
		logger.Warn("Failed to fetch nutrition for food", "food_item_id", job.FoodItemID, "error", err)
		return
	}

	if err := database.DB.Save(&food).Error; err != nil {
		logger.Error("Failed to save nutrition data", "food_item_id", job.FoodItemID, "error", err)
		return
	}

	logger.Info("Nutrition data updated", "food_item_id", job.FoodItemID, "calories", food.Calories)

	update := FoodUpdate{
		FoodItemID: food.ID,
		Calories:   food.Calories,
		Protein:    food.Protein,
		Carbs:      food.Carbs,
		Fat:        food.Fat,
		Fiber:      food.Fiber,
		Sugar:      food.Sugar,
		Sodium:     food.Sodium,
		Verified:   food.NutritionVerified,
	}

	w.subMux.RLock()
	for ch := range w.subscribers {
		select {
		case ch <- update:
		default:
			// Drop update if subscriber is slow
		}
	}
	w.subMux.RUnlock()
}
