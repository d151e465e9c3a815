package content

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsNotEmpty reports whether s has any non-whitespace content.
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidURL reports whether s parses as an absolute URL.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}

// Validate checks the fields the page cannot render without.
func (c *Content) Validate() error {
	var errs []error

	if !IsNotEmpty(c.Profile.Name) {
		errs = append(errs, errors.New("profile.name is empty"))
	}
	if c.Profile.Email != "" && !IsValidEmail(c.Profile.Email) {
		errs = append(errs, fmt.Errorf("profile.email %q is not an email address", c.Profile.Email))
	}
	for i, l := range c.Profile.Links {
		if !IsValidURL(l.URL) {
			errs = append(errs, fmt.Errorf("profile.links[%d] %q is not a URL", i, l.URL))
		}
	}
	if !IsNotEmpty(c.Hero.Headline.Primary) {
		errs = append(errs, errors.New("hero.headline.primary is empty"))
	}
	for i, s := range c.Skills.Skills {
		if s.Value < 0 || s.Value > 100 {
			errs = append(errs, fmt.Errorf("skills[%d] %q value %d outside 0-100", i, s.Name, s.Value))
		}
		if s.Goal < 0 || s.Goal > 100 {
			errs = append(errs, fmt.Errorf("skills[%d] %q goal %d outside 0-100", i, s.Name, s.Goal))
		}
	}
	for i, p := range c.Projects {
		if !IsNotEmpty(p.Title) {
			errs = append(errs, fmt.Errorf("projects[%d] has no title", i))
		}
	}
	seen := make(map[string]bool)
	for i, p := range c.Posts {
		if !IsNotEmpty(p.Slug) {
			errs = append(errs, fmt.Errorf("posts[%d] has no slug", i))
			continue
		}
		if seen[p.Slug] {
			errs = append(errs, fmt.Errorf("posts[%d] duplicate slug %q", i, p.Slug))
		}
		seen[p.Slug] = true
	}

	return errors.Join(errs...)
}
