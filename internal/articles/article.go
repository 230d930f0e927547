package articles

// Article is a published piece of content with an optional PDF body.
type Article struct {
	ID          int64  `json:"articleId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Content     []byte `json:"article,omitempty"`
}

// Patch carries the fields of a partial update. Nil means "keep".
type Patch struct {
	Title       *string `json:"title,omitempty" minLength:"1"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Content     []byte  `json:"article,omitempty"`
}

// Update replaces only the fields present in p.
func (a *Article) Update(p Patch) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
	if p.Content != nil {
		a.Content = append([]byte(nil), p.Content...)
	}
}

func (a Article) clone() Article {
	if a.Content != nil {
		a.Content = append([]byte(nil), a.Content...)
	}
	return a
}
