package utils

import (
	"testing"
	"time"

	"github.com/Nemoeiei/calories-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMRMifflinStJeor(t *testing.T) {
	// 10*70 + 6.25*175 - 5*25 + 5
	male, err := BMR("male", 70, 175, 25)
	require.NoError(t, err)
	assert.InDelta(t, 1673.75, male, 1e-9)

	male30, err := BMR("male", 70, 175, 30)
	require.NoError(t, err)
	assert.InDelta(t, 1648.75, male30, 1e-9)

	female, err := BMR("female", 60, 165, 25)
	require.NoError(t, err)
	// 10*60 + 6.25*165 - 5*25 - 161
	assert.InDelta(t, 1345.25, female, 1e-9)
}

func TestBMRRejectsNonPositiveMetrics(t *testing.T) {
	_, err := BMR("male", 0, 175, 30)
	assert.Error(t, err)

	_, err = BMR("female", 60, -1, 30)
	assert.Error(t, err)
}

func TestTDEEFactors(t *testing.T) {
	assert.InDelta(t, 1200, TDEE(1000, models.ActivitySedentary), 1e-9)
	assert.InDelta(t, 1375, TDEE(1000, models.ActivityLightlyActive), 1e-9)
	assert.InDelta(t, 1550, TDEE(1000, models.ActivityModeratelyActive), 1e-9)
	assert.InDelta(t, 1725, TDEE(1000, models.ActivityVeryActive), 1e-9)
}

func TestTDEEUnknownLevelFallsBackToSedentary(t *testing.T) {
	assert.InDelta(t, 1200, TDEE(1000, "couch_olympian"), 1e-9)
}

func TestTargetMacrosLoseWeight(t *testing.T) {
	protein, carbs, fat := TargetMacros(2000, models.GoalLoseWeight)
	assert.Equal(t, 150, protein) // 2000*0.30/4
	assert.Equal(t, 200, carbs)   // 2000*0.40/4
	assert.Equal(t, 67, fat)      // 2000*0.30/9 rounded
}

func TestTargetMacrosPerGoal(t *testing.T) {
	protein, carbs, fat := TargetMacros(2000, models.GoalMaintainWeight)
	assert.Equal(t, 125, protein)
	assert.Equal(t, 225, carbs)
	assert.Equal(t, 67, fat)

	protein, carbs, fat = TargetMacros(2000, models.GoalGainMuscle)
	assert.Equal(t, 150, protein)
	assert.Equal(t, 250, carbs)
	assert.Equal(t, 44, fat)
}

func TestGoalWeeks(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	twelveWeeksOut := start.AddDate(0, 0, 84)
	assert.InDelta(t, 12, GoalWeeks(&start, &twelveWeeksOut), 1e-9)

	// Shorter than a week floors at one week.
	threeDaysOut := start.AddDate(0, 0, 3)
	assert.InDelta(t, 1, GoalWeeks(&start, &threeDaysOut), 1e-9)

	// Missing or inverted windows default to twelve weeks.
	assert.InDelta(t, 12, GoalWeeks(nil, &twelveWeeksOut), 1e-9)
	assert.InDelta(t, 12, GoalWeeks(&start, nil), 1e-9)
	inverted := start.AddDate(0, 0, -10)
	assert.InDelta(t, 12, GoalWeeks(&start, &inverted), 1e-9)
}

func TestTargetCalories(t *testing.T) {
	birth := time.Now().AddDate(-30, 0, 0)
	start := time.Now()
	target := start.AddDate(0, 0, 84) // 12 weeks

	u := &models.User{
		Gender:          "male",
		BirthDate:       &birth,
		HeightCm:        175,
		CurrentWeightKg: 70,
		TargetWeightKg:  64, // -6 kg over 12 weeks = -0.5 kg/week
		GoalType:        models.GoalLoseWeight,
		ActivityLevel:   models.ActivitySedentary,
		GoalStartDate:   &start,
		GoalTargetDate:  &target,
	}

	got, err := TargetCalories(u)
	require.NoError(t, err)
	// BMR 1648.75 * 1.2 = 1978.5; minus 0.5 kg/week * 1100 = 1428.5 -> 1429
	assert.Equal(t, 1429, got)
}

func TestTargetCaloriesFlooredForAggressiveGoals(t *testing.T) {
	birth := time.Now().AddDate(-30, 0, 0)
	u := &models.User{
		Gender:          "male",
		BirthDate:       &birth,
		HeightCm:        175,
		CurrentWeightKg: 70,
		TargetWeightKg:  40, // -30 kg over the default window: formula goes negative
		GoalType:        models.GoalLoseWeight,
		ActivityLevel:   models.ActivitySedentary,
	}

	got, err := TargetCalories(u)
	require.NoError(t, err)
	assert.Equal(t, MinTargetCalories, got)
}

func TestTargetCaloriesRejectsMissingMetrics(t *testing.T) {
	u := &models.User{Gender: "male"}
	_, err := TargetCalories(u)
	assert.Error(t, err)
}

func TestAgeFromBirthDate(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	beforeBirthday := time.Date(2000, 9, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 25, AgeFromBirthDate(&beforeBirthday, now))

	onBirthday := time.Date(2000, 8, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 26, AgeFromBirthDate(&onBirthday, now))

	assert.Equal(t, 20, AgeFromBirthDate(nil, now))
}

func TestIsGoalMetWithTolerance(t *testing.T) {
	assert.True(t, IsGoalMetWithTolerance(2000, 2000, 5))
	assert.True(t, IsGoalMetWithTolerance(1900, 2000, 5))
	assert.True(t, IsGoalMetWithTolerance(2100, 2000, 5))
	assert.False(t, IsGoalMetWithTolerance(1899, 2000, 5))
	assert.False(t, IsGoalMetWithTolerance(2101, 2000, 5))
	assert.False(t, IsGoalMetWithTolerance(0, 0, 5))
}

func TestMacroPercentages(t *testing.T) {
	protein, carbs, fat := MacroPercentages(0, 0, 0)
	assert.Zero(t, protein)
	assert.Zero(t, carbs)
	assert.Zero(t, fat)

	protein, carbs, fat = MacroPercentages(50, 50, 0)
	assert.InDelta(t, 50, protein, 1e-9)
	assert.InDelta(t, 50, carbs, 1e-9)
	assert.Zero(t, fat)
}
