package career

import "context"

// GetPersonalityTest is a placeholder: it returns the same record for every profile.
func (a *Advisor) GetPersonalityTest(_ context.Context, _ UserData) PersonalityTestResult {
	return PersonalityTestResult{
		PersonalityType: "INTJ",
		Traits:          []string{"Analytical", "Strategic", "Independent"},
		Description:     "You are a strategic thinker who values logic and independence.",
	}
}
