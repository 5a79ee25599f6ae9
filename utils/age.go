package utils

import (
	"fmt"
	"time"
)

// dateOfBirthLayout is the ISO date format the backend stores (YYYY-MM-DD).
const dateOfBirthLayout = "2006-01-02"

// CalculateAge derives the display age from an ISO date of birth as whole
// years elapsed versus the reference date. The backend never transmits age.
func CalculateAge(dateOfBirth string, now time.Time) (int, error) {
	dob, err := time.Parse(dateOfBirthLayout, dateOfBirth)
	if err != nil {
		return 0, fmt.Errorf("invalid date_of_birth %q: %w", dateOfBirth, err)
	}

	age := now.Year() - dob.Year()
	// Birthday not reached yet this year
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age, nil
}
