package unsplash

// searchResponse is the body of GET /search/photos.
type searchResponse struct {
	Total      int        `json:"total"`
	TotalPages int        `json:"total_pages"`
	Results    []apiPhoto `json:"results"`
}

// apiPhoto is a single search hit.
type apiPhoto struct {
	ID             string  `json:"id"`
	Description    *string `json:"description"`
	AltDescription *string `json:"alt_description"`
	URLs           apiURLs `json:"urls"`
}

// apiURLs holds the image renditions of a photo. Only Raw is stored.
type apiURLs struct {
	Raw     string `json:"raw"`
	Full    string `json:"full"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Thumb   string `json:"thumb"`
}
