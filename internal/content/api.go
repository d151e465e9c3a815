package content

// Response is the envelope for single-item lookups, mutations and errors.
// Listings and the test endpoint reply with bare bodies.
type Response[T any] struct {
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// TestInfo is the payload of the API smoke-test endpoint.
type TestInfo struct {
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
	Framework string   `json:"framework"`
	Features  []string `json:"features"`
	Mode      string   `json:"mode"`
}

// PostSummary is a blog post without its body.
type PostSummary struct {
	Slug  string   `json:"slug"`
	Title string   `json:"title"`
	Date  string   `json:"date"`
	Tags  []string `json:"tags"`
}

// BlogList is the reply of the blog listing. Message explains an empty list.
type BlogList struct {
	Posts   []PostSummary `json:"posts"`
	Message string        `json:"message,omitempty"`
}

// Snapshot is the full content together with its store version.
type Snapshot struct {
	Version uint64   `json:"version"`
	Content *Content `json:"content"`
}

// Summaries lists the posts without their bodies.
func (c *Content) Summaries() []PostSummary {
	out := make([]PostSummary, 0, len(c.Posts))
	for _, p := range c.Posts {
		out = append(out, PostSummary{Slug: p.Slug, Title: p.Title, Date: p.Date, Tags: p.Tags})
	}
	return out
}
