package content

import "net/url"

// Page routes of the single-page application.
const (
	RouteHome       = "/"
	RouteAbout      = "/about"
	RouteBlog       = "/blog"
	RouteAPIDemo    = "/api-demo"
	RouteComparison = "/comparison"
)

// API endpoints served by folio-server.
const (
	EndpointTest    = "/api/test"
	EndpointBlog    = "/api/blog"
	EndpointContent = "/api/content"
	EndpointReload  = "/api/content/reload"
	EndpointHealth  = "/api/health"
	EndpointWS      = "/ws"
)

// BlogPostEndpoint returns the detail endpoint for slug.
func BlogPostEndpoint(slug string) string {
	return EndpointBlog + "/" + url.PathEscape(slug)
}
