package examples

// ExampleSet is a group of related sample documents.
type ExampleSet struct {
	Category    string
	Name        string
	Description string
	Documents   []ExampleDocument
}

// ExampleDocument is a single sample file users can open in the editor to
// try unfilling, wrapping, and the save behavior.
type ExampleDocument struct {
	Name        string
	Filename    string
	Description string
	Content     string
}

// Categories lists the valid example categories in display order.
func Categories() []string {
	return []string{"prose", "notes", "all"}
}

// GetExamples returns the example sets for the given category. The "all"
// category returns every set.
func GetExamples(category string) []ExampleSet {
	switch category {
	case "prose":
		return tagged("prose", getProseExamples())
	case "notes":
		return tagged("notes", getNotesExamples())
	case "all":
		var all []ExampleSet
		all = append(all, tagged("prose", getProseExamples())...)
		all = append(all, tagged("notes", getNotesExamples())...)
		return all
	default:
		return nil
	}
}

func tagged(category string, sets []ExampleSet) []ExampleSet {
	for i := range sets {
		sets[i].Category = category
	}
	return sets
}
