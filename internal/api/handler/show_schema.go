package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// searchShowsRequest is a sparse set of equality filters over shows columns
// plus mandatory pagination bounds. Filter fields are pointers so that an
// absent key imposes no constraint; unknown keys are rejected at decode time.
type searchShowsRequest struct {
	ShowID      *string `json:"show_id"`
	Type        *string `json:"type"`
	Title       *string `json:"title"`
	Director    *string `json:"director"`
	Cast        *string `json:"cast"`
	DateAdded   *string `json:"date_added"` // YYYY-MM-DD
	ReleaseYear *int    `json:"release_year"`
	Rating      *string `json:"rating"`
	Duration    *string `json:"duration"`
	Description *string `json:"description"`
	Country     *string `json:"country"`
	ListedIn    *string `json:"listed_in"`

	Limit  *int `json:"limit"  validate:"required,gte=1,lte=100"`
	Offset *int `json:"offset" validate:"required,gte=0"`
}

// showResponse is the transport shape of a catalog entry. It is intentionally
// separate from the domain type so the JSON contract (notably the formatted
// date_added) is not coupled to internal changes.
type showResponse struct {
	ShowID      string `json:"show_id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Director    string `json:"director"`
	Cast        string `json:"cast"`
	DateAdded   string `json:"date_added"`
	ReleaseYear int    `json:"release_year"`
	Rating      string `json:"rating"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Country     string `json:"country"`
	ListedIn    string `json:"listed_in"`
}
