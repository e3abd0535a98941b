package serper

// FounderResult is the name/profile pair extracted from the top search hit.
type FounderResult struct {
	Name string
	Link string
}

type searchRequest struct {
	Q string `json:"q"`
}

type organicResult struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

type searchResponse struct {
	Organic []organicResult `json:"organic"`
}
