package entity

// FAQEntry is a stored question/answer pair with optional page-targeting
// metadata. Entries are authored on the admin surface and loaded wholesale
// by the assistant; the assistant itself only reads them.
type FAQEntry struct {
	ID             string   `json:"id"`
	Question       string   `json:"question"`
	Answer         string   `json:"answer"`
	LastUpdated    string   `json:"last_updated"`
	Tags           []string `json:"tags"`
	TargetPages    []string `json:"target_pages,omitempty"`
	PageKeywords   []string `json:"page_keywords,omitempty"`
	SystemCategory string   `json:"system_category,omitempty"`
}

// TargetsPage reports whether the entry is tied to the given navigation path.
func (e FAQEntry) TargetsPage(path string) bool {
	for _, p := range e.TargetPages {
		if p == path {
			return true
		}
	}
	return false
}
