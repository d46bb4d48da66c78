package blogs

// createInput is the request body for POST /api/blog/new.
type createInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Status      string `json:"status"`
}

// missingFields returns the names of required fields absent from the input.
func (in createInput) missingFields() []string {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if in.Category == "" {
		missing = append(missing, "category")
	}
	if in.Status == "" {
		missing = append(missing, "status")
	}
	if in.ImageURL == "" {
		missing = append(missing, "imageUrl")
	}
	return missing
}

// updateInput is the request body for PUT /api/blog/{id}. Nil fields were
// absent from the body and are left untouched.
type updateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"imageUrl"`
	Status      *string `json:"status"`
}
