package domain

// Project is a single portfolio entry held by the project store.
// Title, Description and URL keep whatever JSON value the caller sent.
type Project struct {
	ID          int   `json:"id"`
	Title       Field `json:"title"`
	Description Field `json:"description"`
	URL         Field `json:"url"`
}

// ProjectInput is the body accepted by create and update.
// Absent members decode to an empty Field and are stored as null.
type ProjectInput struct {
	Title       Field `json:"title"`
	Description Field `json:"description"`
	URL         Field `json:"url"`
}

// Input returns the writable fields of p.
func (p Project) Input() ProjectInput {
	return ProjectInput{Title: p.Title, Description: p.Description, URL: p.URL}
}
