package services

import (
	"testing"
	"time"

	"github.com/Nemoeiei/calories-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSummaryFixture(t *testing.T) (*MealService, *SummaryService, *models.User) {
	db := newTestDB(t)
	users := NewUserService(db)
	summaries := NewSummaryService(db, users)
	meals := NewMealService(db, NewFoodService(db), summaries)
	return meals, summaries, seedUser(t, db)
}

var testDay = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func TestRecomputeSumsItemContributions(t *testing.T) {
	meals, summaries, user := newSummaryFixture(t)
	rice := seedFood(t, meals.db, "steamed rice", 130, 2.7, 28, 0.3)
	chicken := seedFood(t, meals.db, "grilled chicken", 165, 31, 0, 3.6)

	_, err := meals.LogMeal(user.ID, "lunch", testDay.Add(12*time.Hour), []MealItemRequest{
		{FoodID: rice.ID, Amount: 2},
		{FoodID: chicken.ID, Amount: 1.5},
	})
	require.NoError(t, err)

	summary, err := summaries.Recompute(user.ID, testDay)
	require.NoError(t, err)

	assert.InDelta(t, 2*130+1.5*165, summary.TotalCalories, 1e-9)
	assert.InDelta(t, 2*2.7+1.5*31, summary.TotalProtein, 1e-9)
	assert.InDelta(t, 2*28+1.5*0, summary.TotalCarbs, 1e-9)
	assert.InDelta(t, 2*0.3+1.5*3.6, summary.TotalFat, 1e-9)
}

func TestRecomputeIsIdempotent(t *testing.T) {
	meals, summaries, user := newSummaryFixture(t)
	food := seedFood(t, meals.db, "oatmeal", 150, 5, 27, 3)

	_, err := meals.LogMeal(user.ID, "breakfast", testDay.Add(8*time.Hour), []MealItemRequest{
		{FoodID: food.ID, Amount: 1},
	})
	require.NoError(t, err)

	first, err := summaries.Recompute(user.ID, testDay)
	require.NoError(t, err)
	second, err := summaries.Recompute(user.ID, testDay)
	require.NoError(t, err)

	assert.Equal(t, first.TotalCalories, second.TotalCalories)
	assert.Equal(t, first.TotalProtein, second.TotalProtein)
	assert.Equal(t, first.TotalCarbs, second.TotalCarbs)
	assert.Equal(t, first.TotalFat, second.TotalFat)
	assert.Equal(t, first.IsGoalMet, second.IsGoalMet)
}

func TestDeleteMealRemovesExactContribution(t *testing.T) {
	meals, summaries, user := newSummaryFixture(t)
	small := seedFood(t, meals.db, "apple", 100, 0.5, 25, 0.3)
	big := seedFood(t, meals.db, "burger", 200, 17, 30, 20)

	_, err := meals.LogMeal(user.ID, "snack", testDay.Add(10*time.Hour), []MealItemRequest{
		{FoodID: small.ID, Amount: 3},
	})
	require.NoError(t, err)

	doomed, err := meals.LogMeal(user.ID, "lunch", testDay.Add(13*time.Hour), []MealItemRequest{
		{FoodID: big.ID, Amount: 1},
	})
	require.NoError(t, err)

	summary, err := summaries.Recompute(user.ID, testDay)
	require.NoError(t, err)
	assert.InDelta(t, 500, summary.TotalCalories, 1e-9)

	existed, err := meals.DeleteMeal(user.ID, doomed.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	summary, err = summaries.Recompute(user.ID, testDay)
	require.NoError(t, err)
	assert.InDelta(t, 300, summary.TotalCalories, 1e-9)
}

func TestDeleteMealReportsMissingRow(t *testing.T) {
	meals, _, user := newSummaryFixture(t)

	existed, err := meals.DeleteMeal(user.ID, 9999)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestGoalMetBoundary(t *testing.T) {
	meals, summaries, user := newSummaryFixture(t)
	require.NoError(t, meals.db.Model(user).Update("target_calories", 500).Error)

	exact := seedFood(t, meals.db, "exact ration", 500, 0, 0, 0)
	_, err := meals.LogMeal(user.ID, "dinner", testDay.Add(19*time.Hour), []MealItemRequest{
		{FoodID: exact.ID, Amount: 1},
	})
	require.NoError(t, err)

	summary, err := summaries.Recompute(user.ID, testDay)
	require.NoError(t, err)
	// Exactly hitting the goal still counts.
	assert.True(t, summary.IsGoalMet)

	over := seedFood(t, meals.db, "one extra kcal", 1, 0, 0, 0)
	_, err = meals.LogMeal(user.ID, "snack", testDay.Add(20*time.Hour), []MealItemRequest{
		{FoodID: over.ID, Amount: 1},
	})
	require.NoError(t, err)

	summary, err = summaries.Recompute(user.ID, testDay)
	require.NoError(t, err)
	assert.False(t, summary.IsGoalMet)
}

func TestGetOrCreateMaterializesEmptySummary(t *testing.T) {
	_, summaries, user := newSummaryFixture(t)

	summary, err := summaries.GetOrCreate(user.ID, testDay)
	require.NoError(t, err)

	assert.Zero(t, summary.TotalCalories)
	assert.Zero(t, summary.TotalProtein)
	// Target was derived and cached on first materialization.
	assert.Greater(t, summary.GoalCalories, 0)

	again, err := summaries.GetOrCreate(user.ID, testDay)
	require.NoError(t, err)
	assert.Equal(t, summary.ID, again.ID)
}

func TestClearCategoryForcesRecompute(t *testing.T) {
	meals, summaries, user := newSummaryFixture(t)
	toast := seedFood(t, meals.db, "toast", 80, 3, 14, 1)
	soup := seedFood(t, meals.db, "soup", 120, 6, 10, 5)

	_, err := meals.LogMeal(user.ID, "breakfast", testDay.Add(8*time.Hour), []MealItemRequest{
		{FoodID: toast.ID, Amount: 2},
	})
	require.NoError(t, err)
	_, err = meals.LogMeal(user.ID, "lunch", testDay.Add(12*time.Hour), []MealItemRequest{
		{FoodID: soup.ID, Amount: 1},
	})
	require.NoError(t, err)

	require.NoError(t, meals.ClearCategory(user.ID, testDay, "breakfast"))

	summary, err := summaries.GetOrCreate(user.ID, testDay)
	require.NoError(t, err)
	assert.InDelta(t, 120, summary.TotalCalories, 1e-9)

	remaining, err := meals.MealsByDate(user.ID, testDay)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "lunch", remaining[0].Type)
}

func TestSetWaterGlasses(t *testing.T) {
	_, summaries, user := newSummaryFixture(t)

	summary, err := summaries.SetWaterGlasses(user.ID, testDay, 6)
	require.NoError(t, err)
	assert.Equal(t, 6, summary.WaterGlasses)

	_, err = summaries.SetWaterGlasses(user.ID, testDay, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestApportionMacrosGuardsZeroCalories(t *testing.T) {
	protein, carbs, fat := ApportionMacros(300, &models.Food{Calories: 0, Protein: 10, Carbs: 20, Fat: 5})
	assert.Zero(t, protein)
	assert.Zero(t, carbs)
	assert.Zero(t, fat)

	protein, carbs, fat = ApportionMacros(300, &models.Food{Calories: 150, Protein: 10, Carbs: 20, Fat: 5})
	assert.InDelta(t, 20, protein, 1e-9) // 300 * (10/150)
	assert.InDelta(t, 40, carbs, 1e-9)
	assert.InDelta(t, 10, fat, 1e-9)
}
