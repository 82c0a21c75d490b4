package utils

import (
	"errors"
	"math"
)

// BMI expects weight in kilograms and height in centimeters.
func BMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, errors.New("height and weight must be positive")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return math.Round(bmi*100) / 100, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
