package learning

// Category represents a top-level learning domain
type Category string

const (
	CategoryVocabulary   Category = "vocabulary"
	CategoryGrammar      Category = "grammar"
	CategoryConversation Category = "conversation"
)

// IsValid checks if a category is valid
func (c Category) IsValid() bool {
	switch c {
	case CategoryVocabulary, CategoryGrammar, CategoryConversation:
		return true
	default:
		return false
	}
}

// IsTracked reports whether sessions in this category earn progress points.
// Conversation sessions count towards stats and streaks only.
func (c Category) IsTracked() bool {
	return c == CategoryVocabulary || c == CategoryGrammar
}

// TrackedCategories returns the categories that hold progress points
func TrackedCategories() []Category {
	return []Category{CategoryVocabulary, CategoryGrammar}
}

func (c Category) String() string { return string(c) }
