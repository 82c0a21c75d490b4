package utils

import (
	"errors"
	"math"
	"time"

	"github.com/Nemoeiei/calories-guard/models"
)

// Energy math for target derivation. Everything here is pure; callers decide
// what to persist.

// Multipliers applied to BMR per activity level.
var activityFactors = map[string]float64{
	models.ActivitySedentary:        1.2,
	models.ActivityLightlyActive:    1.375,
	models.ActivityModeratelyActive: 1.55,
	models.ActivityVeryActive:       1.725,
}

// Calories needed to shift one kg of body weight per week.
const kcalPerKgPerWeek = 1100

// MinTargetCalories floors derived daily targets: an aggressive enough goal
// window can push the deficit arithmetic below any safe intake, and a
// non-positive stored target would read as "not computed yet".
const MinTargetCalories = 1200

const (
	defaultGoalWeeks = 12.0
	defaultAgeYears  = 20
)

// Macro split per goal type: fraction of calories to protein/carbs/fat.
var macroSplits = map[string][3]float64{
	models.GoalLoseWeight:     {0.30, 0.40, 0.30},
	models.GoalMaintainWeight: {0.25, 0.45, 0.30},
	models.GoalGainMuscle:     {0.30, 0.50, 0.20},
}

// BMR computes basal metabolic rate with the Mifflin-St Jeor equation.
func BMR(gender string, weightKg, heightCm float64, ageYears int) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, errors.New("weight and height must be positive")
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == "female" {
		bmr -= 161
	} else {
		bmr += 5
	}
	return bmr, nil
}

// TDEE scales BMR by the activity factor. Unknown levels get the sedentary
// multiplier rather than an error.
func TDEE(bmr float64, activityLevel string) float64 {
	factor, ok := activityFactors[activityLevel]
	if !ok {
		factor = activityFactors[models.ActivitySedentary]
	}
	return bmr * factor
}

// GoalWeeks returns the length of the user's goal window in weeks, floored
// at one week. A missing or non-positive window defaults to twelve weeks.
func GoalWeeks(start, target *time.Time) float64 {
	if start == nil || target == nil {
		return defaultGoalWeeks
	}
	days := target.Sub(*start).Hours() / 24
	if days <= 0 {
		return defaultGoalWeeks
	}
	weeks := days / 7
	if weeks < 1 {
		weeks = 1
	}
	return weeks
}

// TargetCalories derives a daily calorie target from the user's profile:
// TDEE adjusted by the weekly weight-change rate the goal window implies,
// floored at MinTargetCalories.
func TargetCalories(u *models.User) (int, error) {
	age := AgeFromBirthDate(u.BirthDate, time.Now())
	bmr, err := BMR(u.Gender, u.CurrentWeightKg, u.HeightCm, age)
	if err != nil {
		return 0, err
	}
	tdee := TDEE(bmr, u.ActivityLevel)

	weeks := GoalWeeks(u.GoalStartDate, u.GoalTargetDate)
	kgPerWeek := (u.TargetWeightKg - u.CurrentWeightKg) / weeks

	target := int(math.Round(tdee + kgPerWeek*kcalPerKgPerWeek))
	if target < MinTargetCalories {
		target = MinTargetCalories
	}
	return target, nil
}

// TargetMacros splits a calorie target into gram targets using the
// goal-dependent ratio table (4 kcal/g protein and carbs, 9 kcal/g fat).
func TargetMacros(targetCalories int, goalType string) (proteinG, carbsG, fatG int) {
	split, ok := macroSplits[goalType]
	if !ok {
		split = macroSplits[models.GoalMaintainWeight]
	}
	cal := float64(targetCalories)
	proteinG = int(math.Round(cal * split[0] / 4))
	carbsG = int(math.Round(cal * split[1] / 4))
	fatG = int(math.Round(cal * split[2] / 9))
	return proteinG, carbsG, fatG
}

// AgeFromBirthDate counts whole years elapsed, rounding down by month/day
// comparison. A nil birth date defaults to 20.
func AgeFromBirthDate(birth *time.Time, now time.Time) int {
	if birth == nil {
		return defaultAgeYears
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// IsGoalMetWithTolerance reports whether intake lands inside a ± tolerance
// band around the target. Kept for reporting/analytics only: the summary
// recompute path uses a strict "intake <= goal" comparison, not this.
func IsGoalMetWithTolerance(actualCalories float64, targetCalories int, tolerancePercent float64) bool {
	if targetCalories == 0 {
		return false
	}
	tolerance := float64(targetCalories) * tolerancePercent / 100
	lower := float64(targetCalories) - tolerance
	upper := float64(targetCalories) + tolerance
	return lower <= actualCalories && actualCalories <= upper
}

// MacroPercentages gives the calorie share of each macro in a day's intake
// (protein/carbs 4 kcal/g, fat 9 kcal/g). Zero intake yields all zeros.
func MacroPercentages(proteinG, carbsG, fatG float64) (protein, carbs, fat float64) {
	proteinCal := proteinG * 4
	carbsCal := carbsG * 4
	fatCal := fatG * 9
	total := proteinCal + carbsCal + fatCal
	if total == 0 {
		return 0, 0, 0
	}
	round1 := func(f float64) float64 { return math.Round(f*10) / 10 }
	return round1(proteinCal / total * 100), round1(carbsCal / total * 100), round1(fatCal / total * 100)
}
