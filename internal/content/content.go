// Package content holds the landing page copy: hero, skills, projects,
// career, engineering notes and blog posts.
package content

type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

type Profile struct {
	Name  string `json:"name" yaml:"name"`
	Site  string `json:"site" yaml:"site"`
	Email string `json:"email" yaml:"email"`
	Links []Link `json:"links" yaml:"links"`
}

type Headline struct {
	Primary string `json:"primary" yaml:"primary"`
	Accent  string `json:"accent" yaml:"accent"`
}

type CTA struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
}

type Hero struct {
	Badge    string   `json:"badge" yaml:"badge"`
	Headline Headline `json:"headline" yaml:"headline"`
	Bio      string   `json:"bio" yaml:"bio"`
	CTA      CTA      `json:"cta" yaml:"cta"`
	Motto    []string `json:"motto" yaml:"motto"`
}

// Skill is one bar of the skills chart. Goal is zero when unset.
type Skill struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
	Goal  int    `json:"goal,omitempty" yaml:"goal,omitempty"`
}

type Stats struct {
	YearsExp     string `json:"yearsExp" yaml:"years_exp"`
	Lighthouse   string `json:"lighthouse" yaml:"lighthouse"`
	HalfMarathon string `json:"halfMarathon" yaml:"half_marathon"`
}

type Skills struct {
	Skills []Skill `json:"skills" yaml:"skills"`
	Stats  Stats   `json:"stats" yaml:"stats"`
}

type Metric struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

type Project struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Metrics     []Metric `json:"metrics" yaml:"metrics"`
	Tags        []string `json:"tags" yaml:"tags"`
	Image       string   `json:"image" yaml:"image"`
	Diagram     string   `json:"diagram,omitempty" yaml:"diagram,omitempty"`
}

type Experience struct {
	Companies []string `json:"companies" yaml:"companies"`
}

// Note is an engineering note. Paragraphs are Markdown.
type Note struct {
	Title   string   `json:"title" yaml:"title"`
	Date    string   `json:"date" yaml:"date"`
	Tags    []string `json:"tags" yaml:"tags"`
	Content []string `json:"content" yaml:"content"`
}

type Post struct {
	Slug    string   `json:"slug" yaml:"slug"`
	Title   string   `json:"title" yaml:"title"`
	Content string   `json:"content" yaml:"content"`
	Date    string   `json:"date" yaml:"date"`
	Author  string   `json:"author" yaml:"author"`
	Tags    []string `json:"tags" yaml:"tags"`
}

// Content is everything the landing page renders.
type Content struct {
	Profile    Profile    `json:"profile" yaml:"profile"`
	Hero       Hero       `json:"hero" yaml:"hero"`
	Skills     Skills     `json:"skills" yaml:"skills"`
	Projects   []Project  `json:"projects" yaml:"projects"`
	Experience Experience `json:"experience" yaml:"experience"`
	Notes      []Note     `json:"notes" yaml:"notes"`
	Posts      []Post     `json:"posts" yaml:"posts"`
}

// Post returns the blog post with the given slug.
func (c *Content) Post(slug string) (Post, bool) {
	for _, p := range c.Posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}
