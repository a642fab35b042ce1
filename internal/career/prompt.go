package career

import (
	"fmt"
	"strings"
)

const careerPromptTemplate = `Suggest 3 personalized career paths for this person:
%s
For each career include: title, brief description, match reason, resources, opportunities, required skills, salary range, growth prospects, education requirements.
Return JSON only:
{"careers":[{"title":"","description":"","match":"","resources":[{"name":"","url":"","type":""}],"opportunities":[{"title":"","organization":"","location":"","url":"","type":"","deadline":""}],"requiredSkills":[],"salaryRange":"","growthProspects":"","educationRequirements":""}]}`

const skillGapPromptTemplate = `Find skill gaps for the career: %s
User Skills: %s
Education: %s
Interests: %s
Return JSON only:
{"missingSkills":[],"learningResources":[{"name":"","url":"","type":""}]}`

// FormatProfile renders the profile block shared by the prompts.
func FormatProfile(u UserData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Age: %d\n", u.Age)
	fmt.Fprintf(&b, "Location: %s\n", u.Location)
	fmt.Fprintf(&b, "Education: %s\n", u.Education)
	fmt.Fprintf(&b, "Subjects: %s\n", joinList(u.Subjects))
	fmt.Fprintf(&b, "Interests: %s\n", joinList(u.Interests))
	fmt.Fprintf(&b, "Technical Skills: %s\n", joinList(u.Skills.Technical))
	fmt.Fprintf(&b, "Soft Skills: %s\n", joinList(u.Skills.Soft))
	fmt.Fprintf(&b, "Preferences: %s, %s, %s",
		u.Preferences.Environment, u.Preferences.WorkStyle, u.Preferences.Pace)
	return b.String()
}

// CareerPrompt asks for three career suggestions in the career JSON contract.
func CareerPrompt(u UserData) string {
	return fmt.Sprintf(careerPromptTemplate, FormatProfile(u))
}

// SkillGapPrompt asks which skills u lacks for careerTitle.
func SkillGapPrompt(u UserData, careerTitle string) string {
	skills := make([]string, 0, len(u.Skills.Technical)+len(u.Skills.Soft))
	skills = append(skills, u.Skills.Technical...)
	skills = append(skills, u.Skills.Soft...)
	return fmt.Sprintf(skillGapPromptTemplate,
		careerTitle, joinList(skills), u.Education, joinList(u.Interests))
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}
