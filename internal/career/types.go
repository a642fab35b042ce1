package career

// UserData is the profile submitted by the front-end. It is read, never modified.
type UserData struct {
	Age         int         `json:"age" validate:"gte=0,lte=120"`
	Location    string      `json:"location"`
	Education   string      `json:"education"`
	Subjects    []string    `json:"subjects"`
	Interests   []string    `json:"interests"`
	Skills      Skills      `json:"skills"`
	Preferences Preferences `json:"preferences"`
}

type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

type Preferences struct {
	Environment string `json:"environment"`
	WorkStyle   string `json:"workStyle"`
	Pace        string `json:"pace"`
}

// Resource is a learning resource. Type is one of course, tool, book or website
// by convention; the model's value is passed through unchecked.
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Opportunity is a job or study opening attached to a career.
type Opportunity struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Location     string `json:"location"`
	URL          string `json:"url"`
	Type         string `json:"type"`
	Deadline     string `json:"deadline,omitempty"`
}

// Career is a suggestion as handed to the front-end.
type Career struct {
	ID                    int           `json:"id"`
	Title                 string        `json:"title"`
	Description           string        `json:"description"`
	Match                 string        `json:"match"`
	Resources             []Resource    `json:"resources"`
	Opportunities         []Opportunity `json:"opportunities,omitempty"`
	RequiredSkills        []string      `json:"requiredSkills"`
	SalaryRange           string        `json:"salaryRange"`
	GrowthProspects       string        `json:"growthProspects"`
	EducationRequirements string        `json:"educationRequirements"`
	Icon                  string        `json:"icon"`
	Color                 string        `json:"color"`
}

// SkillGapResult lists what a user lacks for a target career and where to learn it.
type SkillGapResult struct {
	MissingSkills     []string   `json:"missingSkills"`
	LearningResources []Resource `json:"learningResources"`
}

// EmptySkillGap is the safe default returned when analysis fails.
func EmptySkillGap() SkillGapResult {
	return SkillGapResult{MissingSkills: []string{}, LearningResources: []Resource{}}
}

type PersonalityTestResult struct {
	PersonalityType string   `json:"personalityType"`
	Traits          []string `json:"traits"`
	Description     string   `json:"description"`
}
