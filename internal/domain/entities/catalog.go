package entities

// Discipline groups the survey types offered under it.
type Discipline struct {
	Name        string   `json:"name"`
	SurveyTypes []string `json:"survey_types"`
}

// Catalog is the fixed two-level classification of surveys, in display order.
var Catalog = []Discipline{
	{Name: "Building Survey", SurveyTypes: []string{"Level 1", "Level 2", "Level 3"}},
	{Name: "Measured Survey", SurveyTypes: []string{"Floor Plans", "Elevations", "Sections"}},
	{Name: "Topographical Survey", SurveyTypes: []string{"Standard", "Detailed"}},
	{Name: "MEP Survey", SurveyTypes: []string{"Basic", "Comprehensive"}},
}

// LookupDiscipline finds a discipline by name.
func LookupDiscipline(name string) (Discipline, bool) {
	for _, d := range Catalog {
		if d.Name == name {
			return d, true
		}
	}
	return Discipline{}, false
}

// Offers reports whether surveyType belongs to the discipline.
func (d Discipline) Offers(surveyType string) bool {
	for _, t := range d.SurveyTypes {
		if t == surveyType {
			return true
		}
	}
	return false
}

// ProjectSurveyLabel is the survey label given to a project derived from a quote.
func ProjectSurveyLabel(discipline, surveyType string) string {
	return discipline + " - " + surveyType
}
