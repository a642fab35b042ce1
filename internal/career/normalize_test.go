package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_WithSurroundingProse(t *testing.T) {
	raw := `Sure! {"careers":[{"title":"Data Analyst","description":"d","match":"m","resources":[]}]} Hope that helps`

	root, err := ExtractJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, "Data Analyst", root.Get("careers.0.title").String())
}

func TestExtractJSON_CodeFence(t *testing.T) {
	raw := "```json\n{\"missingSkills\":[\"Statistics\"],\"learningResources\":[]}\n```"

	root, err := ExtractJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, "Statistics", root.Get("missingSkills.0").String())
}

func TestExtractJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"empty", "", ErrNoJSONObject},
		{"prose only", "I cannot help with that.", ErrNoJSONObject},
		{"closing before opening", "} nothing {", ErrNoJSONObject},
		{"truncated object", `{"careers":[{"title":"x"`, ErrNoJSONObject},
		{"two objects", `{"a":1} and {"b":2}`, ErrInvalidJSON},
		{"malformed", `{"careers": [,]}`, ErrInvalidJSON},
		{"unquoted keys", `{careers: nope}`, ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractJSON(tt.raw)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func mustParseCareers(t *testing.T, raw string) []Career {
	t.Helper()
	root, err := ExtractJSON(raw)
	require.NoError(t, err)
	careers, err := parseCareers(root)
	require.NoError(t, err)
	return careers
}

func TestParseCareers_DefaultsAndEnrichment(t *testing.T) {
	got := mustParseCareers(t, `{"careers":[
		{"title":"A","resources":[],"salaryRange":"$50k-$80k","growthProspects":""},
		{"title":"B","resources":[]},
		{"title":"C","resources":[]},{"title":"D","resources":[]},{"title":"E","resources":[]},
		{"title":"F","resources":[],"requiredSkills":["Go"]}
	]}`)
	require.Len(t, got, 6)

	assert.Equal(t, 1000, got[0].ID)
	assert.Equal(t, 1005, got[5].ID)
	assert.Equal(t, "Cpu", got[0].Icon)

	assert.Equal(t, "$50k-$80k", got[0].SalaryRange)
	assert.Equal(t, "", got[0].GrowthProspects, "present but empty stays empty")
	assert.Equal(t, "Not specified", got[0].EducationRequirements)

	assert.Equal(t, "Not specified", got[1].SalaryRange)
	assert.Equal(t, "Not specified", got[1].GrowthProspects)
	assert.Equal(t, []string{}, got[1].RequiredSkills)
	assert.Equal(t, []Resource{}, got[1].Resources)
	assert.Nil(t, got[1].Opportunities)

	colors := make([]string, len(got))
	for i, c := range got {
		colors[i] = c.Color
	}
	assert.Equal(t, []string{"blue", "purple", "teal", "pink", "orange", "blue"}, colors)
	assert.Equal(t, []string{"Go"}, got[5].RequiredSkills)
}

func TestParseCareers_NullOptionalFieldsDefault(t *testing.T) {
	got := mustParseCareers(t, `{"careers":[{"title":"X","resources":[],"salaryRange":null,"requiredSkills":null,"opportunities":null}]}`)

	require.Len(t, got, 1)
	assert.Equal(t, "Not specified", got[0].SalaryRange)
	assert.Equal(t, []string{}, got[0].RequiredSkills)
	assert.Nil(t, got[0].Opportunities)
}

func TestParseCareers_CastsNonStringScalars(t *testing.T) {
	got := mustParseCareers(t, `{"careers":[
		{"title":"Data Analyst","description":"d","match":85,"salaryRange":60000,"growthProspects":true,
		 "requiredSkills":["SQL",3],
		 "resources":[{"name":"Stats","url":"https://s.example","type":"course"}],
		 "opportunities":[{"title":"Intern","organization":"Acme","location":"Remote","url":"u","type":"job","deadline":2025}]},
		{"title":"UX","description":"d","match":"good fit","resources":[]}
	]}`)

	require.Len(t, got, 2)
	assert.Equal(t, "85", got[0].Match)
	assert.Equal(t, "60000", got[0].SalaryRange)
	assert.Equal(t, "true", got[0].GrowthProspects)
	assert.Equal(t, []string{"SQL", "3"}, got[0].RequiredSkills)
	assert.Equal(t, "2025", got[0].Opportunities[0].Deadline)
	assert.Equal(t, "good fit", got[1].Match)
}

func TestParseCareers_RejectsIncompleteShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing careers", `{"suggestions":[]}`},
		{"careers not an array", `{"careers":{"title":"X"}}`},
		{"null career", `{"careers":[{"title":"Data Analyst","description":"d","match":"m","resources":[]},null]}`},
		{"scalar career", `{"careers":["Data Analyst"]}`},
		{"missing resources", `{"careers":[{"title":"Data Analyst","description":"d","match":"m"}]}`},
		{"null resources", `{"careers":[{"title":"Data Analyst","resources":null}]}`},
		{"null resource entry", `{"careers":[{"title":"Data Analyst","resources":[null]}]}`},
		{"null opportunity entry", `{"careers":[{"title":"Data Analyst","resources":[],"opportunities":[null]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := ExtractJSON(tt.raw)
			require.NoError(t, err)

			careers, err := parseCareers(root)
			assert.ErrorIs(t, err, ErrUnexpectedShape)
			assert.Nil(t, careers)
		})
	}
}

func TestParseSkillGap(t *testing.T) {
	t.Run("absent lists are empty", func(t *testing.T) {
		root, err := ExtractJSON(`{}`)
		require.NoError(t, err)

		got, err := parseSkillGap(root)
		require.NoError(t, err)
		assert.Equal(t, EmptySkillGap(), got)
	})

	t.Run("non-string skills are cast", func(t *testing.T) {
		root, err := ExtractJSON(`{"missingSkills":["SQL",3],"learningResources":[{"name":"Stats","url":"u","type":"book"}]}`)
		require.NoError(t, err)

		got, err := parseSkillGap(root)
		require.NoError(t, err)
		assert.Equal(t, []string{"SQL", "3"}, got.MissingSkills)
		assert.Equal(t, []Resource{{Name: "Stats", URL: "u", Type: "book"}}, got.LearningResources)
	})

	t.Run("null resource entry fails", func(t *testing.T) {
		root, err := ExtractJSON(`{"missingSkills":[],"learningResources":[null]}`)
		require.NoError(t, err)

		_, err = parseSkillGap(root)
		assert.ErrorIs(t, err, ErrUnexpectedShape)
	})
}
