package models

// Question categories. The set is closed and its order here is the display
// and export order.
const (
	CategoryTechnical      = "Technical"
	CategoryBehavioral     = "Behavioral"
	CategoryProblemSolving = "Problem Solving"
	CategoryCulturalFit    = "Cultural Fit"
	CategoryLeadership     = "Leadership"
	CategoryCommunication  = "Communication"
)

// QuestionCategories lists the closed category set in declared order.
var QuestionCategories = []string{
	CategoryTechnical,
	CategoryBehavioral,
	CategoryProblemSolving,
	CategoryCulturalFit,
	CategoryLeadership,
	CategoryCommunication,
}

// Question is one interview question belonging to exactly one category.
// The category is fixed for the lifetime of the question.
type Question struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// ValidCategory reports whether category belongs to the closed set.
func ValidCategory(category string) bool {
	for _, c := range QuestionCategories {
		if c == category {
			return true
		}
	}
	return false
}
