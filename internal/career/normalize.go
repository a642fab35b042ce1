package career

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrNoJSONObject is returned when the completion contains no {...} span.
	ErrNoJSONObject = errors.New("no JSON object in AI response")

	// ErrInvalidJSON is returned when the extracted span is not well-formed JSON.
	ErrInvalidJSON = errors.New("invalid JSON format in AI response")

	// ErrUnexpectedShape is returned when well-formed JSON lacks a structure the
	// mapping walks: the careers array, a career object or its resources array.
	ErrUnexpectedShape = errors.New("unexpected AI response shape")
)

const notSpecified = "Not specified"

const (
	careerIDBase = 1000
	careerIcon   = "Cpu"
)

var careerColors = [...]string{"blue", "purple", "teal", "pink", "orange"}

// ExtractJSON returns the JSON value spanning the first '{' to the last '}' of raw.
// Prose around the object is ignored; nothing inside it is repaired.
func ExtractJSON(raw string) (gjson.Result, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return gjson.Result{}, ErrNoJSONObject
	}
	span := raw[start : end+1]
	if !gjson.Valid(span) {
		return gjson.Result{}, ErrInvalidJSON
	}
	return gjson.Parse(span), nil
}

// parseCareers maps the "careers" array, assigning ids and colors by position.
// Scalars are cast to strings whatever their JSON type.
func parseCareers(root gjson.Result) ([]Career, error) {
	list := root.Get("careers")
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: careers is not an array", ErrUnexpectedShape)
	}

	items := list.Array()
	out := make([]Career, 0, len(items))
	for i, c := range items {
		if !c.IsObject() {
			return nil, fmt.Errorf("%w: career %d is not an object", ErrUnexpectedShape, i)
		}
		resources, err := parseResources(c.Get("resources"))
		if err != nil {
			return nil, fmt.Errorf("career %d resources: %w", i, err)
		}
		opportunities, err := parseOpportunities(c.Get("opportunities"))
		if err != nil {
			return nil, fmt.Errorf("career %d opportunities: %w", i, err)
		}
		requiredSkills, err := stringList(c.Get("requiredSkills"))
		if err != nil {
			return nil, fmt.Errorf("career %d requiredSkills: %w", i, err)
		}

		out = append(out, Career{
			ID:                    careerIDBase + i,
			Title:                 c.Get("title").String(),
			Description:           c.Get("description").String(),
			Match:                 c.Get("match").String(),
			Resources:             resources,
			Opportunities:         opportunities,
			RequiredSkills:        requiredSkills,
			SalaryRange:           orNotSpecified(c.Get("salaryRange")),
			GrowthProspects:       orNotSpecified(c.Get("growthProspects")),
			EducationRequirements: orNotSpecified(c.Get("educationRequirements")),
			Icon:                  careerIcon,
			Color:                 careerColors[i%len(careerColors)],
		})
	}
	return out, nil
}

// parseSkillGap reads missingSkills and learningResources; absent lists come back empty.
func parseSkillGap(root gjson.Result) (SkillGapResult, error) {
	missing, err := stringList(root.Get("missingSkills"))
	if err != nil {
		return SkillGapResult{}, fmt.Errorf("missingSkills: %w", err)
	}
	result := SkillGapResult{MissingSkills: missing, LearningResources: []Resource{}}

	if lr := root.Get("learningResources"); isSet(lr) {
		result.LearningResources, err = parseResources(lr)
		if err != nil {
			return SkillGapResult{}, fmt.Errorf("learningResources: %w", err)
		}
	}
	return result, nil
}

// parseResources requires an array of objects.
func parseResources(v gjson.Result) ([]Resource, error) {
	if !v.IsArray() {
		return nil, fmt.Errorf("%w: resources is not an array", ErrUnexpectedShape)
	}
	items := v.Array()
	out := make([]Resource, 0, len(items))
	for i, r := range items {
		if !r.IsObject() {
			return nil, fmt.Errorf("%w: resource %d is not an object", ErrUnexpectedShape, i)
		}
		out = append(out, Resource{
			Name: r.Get("name").String(),
			URL:  r.Get("url").String(),
			Type: r.Get("type").String(),
		})
	}
	return out, nil
}

// parseOpportunities returns nil when the field is absent or null.
func parseOpportunities(v gjson.Result) ([]Opportunity, error) {
	if !isSet(v) {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, fmt.Errorf("%w: opportunities is not an array", ErrUnexpectedShape)
	}
	items := v.Array()
	out := make([]Opportunity, 0, len(items))
	for i, o := range items {
		if !o.IsObject() {
			return nil, fmt.Errorf("%w: opportunity %d is not an object", ErrUnexpectedShape, i)
		}
		out = append(out, Opportunity{
			Title:        o.Get("title").String(),
			Organization: o.Get("organization").String(),
			Location:     o.Get("location").String(),
			URL:          o.Get("url").String(),
			Type:         o.Get("type").String(),
			Deadline:     o.Get("deadline").String(),
		})
	}
	return out, nil
}

// stringList casts each element to a string. Absent or null yields an empty list.
func stringList(v gjson.Result) ([]string, error) {
	if !isSet(v) {
		return []string{}, nil
	}
	if !v.IsArray() {
		return nil, fmt.Errorf("%w: expected an array", ErrUnexpectedShape)
	}
	items := v.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	return out, nil
}

func orNotSpecified(v gjson.Result) string {
	if !isSet(v) {
		return notSpecified
	}
	return v.String()
}

func isSet(v gjson.Result) bool {
	return v.Exists() && v.Type != gjson.Null
}
