// GhProfile - GitHub Profile README Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package profile defines the GitHub profile configuration (profile.toml)
// collected by the wizard and consumed by the README renderer.
package profile

// Config is the top-level profile configuration. Every section except Meta
// is optional; a nil section is omitted from the file.
type Config struct {
	Meta     Meta      `toml:"meta"`
	Header   *Header   `toml:"header,omitempty"`
	About    *About    `toml:"about,omitempty"`
	Social   *Social   `toml:"social,omitempty"`
	Skills   *Skills   `toml:"skills,omitempty"`
	Stats    *Stats    `toml:"stats,omitempty"`
	Projects *Projects `toml:"projects,omitempty"`
	Blog     *Blog     `toml:"blog,omitempty"`
	Dynamic  *Dynamic  `toml:"dynamic,omitempty"`
	Layout   *Layout   `toml:"layout,omitempty"`
	Sponsors *Sponsors `toml:"sponsors,omitempty"`
	Extras   *Extras   `toml:"extras,omitempty"`
}

// Meta holds the required GitHub username and an optional display name.
type Meta struct {
	Username string `toml:"username"`
	Name     string `toml:"name,omitempty"`
}

// HeaderStyle selects how the README greeting is drawn.
type HeaderStyle string

const (
	HeaderTypingSVG HeaderStyle = "typing_svg"
	HeaderText      HeaderStyle = "text"
	HeaderBanner    HeaderStyle = "banner"
	HeaderWave      HeaderStyle = "wave"
)

// HeaderStyles lists the valid header styles in display order.
var HeaderStyles = []HeaderStyle{HeaderTypingSVG, HeaderText, HeaderBanner, HeaderWave}

// Header is the banner, typing SVG or text greeting at the top of the README.
type Header struct {
	Style       HeaderStyle `toml:"style,omitempty"`
	BannerURL   string      `toml:"banner_url,omitempty"`
	TypingLines []string    `toml:"typing_lines,omitempty"`
	TypingFont  string      `toml:"typing_font,omitempty"`
	TypingColor string      `toml:"typing_color,omitempty"`
	Tagline     string      `toml:"tagline,omitempty"`
}

// About is the "About Me" section.
type About struct {
	Role        string `toml:"role,omitempty"`
	Company     string `toml:"company,omitempty"`
	CurrentWork string `toml:"current_work,omitempty"`
	Learning    string `toml:"learning,omitempty"`
	ReachMe     string `toml:"reach_me,omitempty"`
	FunFact     string `toml:"fun_fact,omitempty"`
	Pronouns    string `toml:"pronouns,omitempty"`
	Location    string `toml:"location,omitempty"`
	Timezone    string `toml:"timezone,omitempty"`
}

// Social holds one profile URL (or address) per platform.
type Social struct {
	GitHub        string `toml:"github,omitempty"`
	Twitter       string `toml:"twitter,omitempty"`
	LinkedIn      string `toml:"linkedin,omitempty"`
	Mastodon      string `toml:"mastodon,omitempty"`
	Bluesky       string `toml:"bluesky,omitempty"`
	Instagram     string `toml:"instagram,omitempty"`
	YouTube       string `toml:"youtube,omitempty"`
	Discord       string `toml:"discord,omitempty"`
	DevTo         string `toml:"devto,omitempty"`
	Hashnode      string `toml:"hashnode,omitempty"`
	Medium        string `toml:"medium,omitempty"`
	StackOverflow string `toml:"stackoverflow,omitempty"`
	Reddit        string `toml:"reddit,omitempty"`
	Twitch        string `toml:"twitch,omitempty"`
	Website       string `toml:"website,omitempty"`
	Email         string `toml:"email,omitempty"`
	KoFi          string `toml:"kofi,omitempty"`
	RSS           string `toml:"rss,omitempty"`
}

// Skills is the tech stack, grouped by category.
type Skills struct {
	Languages  []string `toml:"languages,omitempty"`
	Frameworks []string `toml:"frameworks,omitempty"`
	Tools      []string `toml:"tools,omitempty"`
	Databases  []string `toml:"databases,omitempty"`
	Cloud      []string `toml:"cloud,omitempty"`
}

// Stats configures the GitHub stats cards. Booleans are pointers so that an
// explicit false survives a round trip.
type Stats struct {
	StatsCard         *bool  `toml:"stats_card,omitempty"`
	TopLangs          *bool  `toml:"top_langs,omitempty"`
	Streak            *bool  `toml:"streak,omitempty"`
	ContributorStats  *bool  `toml:"contributor_stats,omitempty"`
	Trophies          *bool  `toml:"trophies,omitempty"`
	ContributionSnake *bool  `toml:"contribution_snake,omitempty"`
	ProfileViews      *bool  `toml:"profile_views,omitempty"`
	Theme             string `toml:"theme,omitempty"`
	HideBorder        *bool  `toml:"hide_border,omitempty"`
	TopLangsLayout    string `toml:"top_langs_layout,omitempty"`
	TopLangsCount     *int   `toml:"top_langs_count,omitempty"`
}

// ProjectDisplay selects how featured repositories are rendered.
type ProjectDisplay string

const (
	DisplayPinCards      ProjectDisplay = "pin_cards"
	DisplayMarkdownTable ProjectDisplay = "markdown_table"
)

// ProjectDisplays lists the valid project display modes.
var ProjectDisplays = []ProjectDisplay{DisplayPinCards, DisplayMarkdownTable}

// Projects lists featured repositories as "owner/repo".
type Projects struct {
	Repos   []string       `toml:"repos,omitempty"`
	Display ProjectDisplay `toml:"display,omitempty"`
}

// Article is a hand-picked blog post link.
type Article struct {
	Title string `toml:"title"`
	URL   string `toml:"url"`
}

// Blog is the blog and content section.
type Blog struct {
	RSSURLs    []string  `toml:"rss_urls,omitempty"`
	Articles   []Article `toml:"articles,omitempty"`
	YouTube    string    `toml:"youtube,omitempty"`
	Newsletter string    `toml:"newsletter,omitempty"`
}

// Dynamic configures live integrations refreshed by GitHub Actions.
type Dynamic struct {
	SpotifyUID       string `toml:"spotify_uid,omitempty"`
	WakaTime         *bool  `toml:"wakatime,omitempty"`
	GitHubActivity   *bool  `toml:"github_activity,omitempty"`
	StackOverflowUID string `toml:"stackoverflow_uid,omitempty"`
}

// Template is the overall README layout.
type Template string

const (
	TemplateMinimal       Template = "minimal"
	TemplateFull          Template = "full"
	TemplateDeveloperCard Template = "developer_card"
	TemplateMultiColumn   Template = "multi_column"
)

// Templates lists the valid layout templates.
var Templates = []Template{TemplateMinimal, TemplateFull, TemplateDeveloperCard, TemplateMultiColumn}

// Layout controls the template and theming.
type Layout struct {
	Template Template `toml:"template,omitempty"`
	DarkMode *bool    `toml:"dark_mode,omitempty"`
	Centered *bool    `toml:"centered,omitempty"`
}

// Sponsors is the sponsorship section.
type Sponsors struct {
	GitHubSponsors *bool  `toml:"github_sponsors,omitempty"`
	KoFi           string `toml:"kofi,omitempty"`
	BuyMeACoffee   string `toml:"buy_me_a_coffee,omitempty"`
}

// CollapsibleSection renders as a <details> block.
type CollapsibleSection struct {
	Summary string `toml:"summary"`
	Content string `toml:"content"`
}

// Extras covers PGP, gaming handles, certifications and free-form blocks.
type Extras struct {
	PGPFingerprint string               `toml:"pgp_fingerprint,omitempty"`
	Xbox           string               `toml:"xbox,omitempty"`
	Steam          string               `toml:"steam,omitempty"`
	PSN            string               `toml:"psn,omitempty"`
	Certifications []string             `toml:"certifications,omitempty"`
	CustomBlocks   []string             `toml:"custom_blocks,omitempty"`
	Collapsible    []CollapsibleSection `toml:"collapsible,omitempty"`
}

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n.
func Int(n int) *int { return &n }

// BoolValue dereferences p, treating nil as false.
func BoolValue(p *bool) bool { return p != nil && *p }

// IsZero reports whether nothing at all has been configured.
func (c Config) IsZero() bool {
	return c == Config{}
}

// Clone returns a copy whose sections can be changed without touching c.
// Fields inside a section are copied shallowly.
func (c Config) Clone() Config {
	out := c
	out.Header = cloneSection(c.Header)
	out.About = cloneSection(c.About)
	out.Social = cloneSection(c.Social)
	out.Skills = cloneSection(c.Skills)
	out.Stats = cloneSection(c.Stats)
	out.Projects = cloneSection(c.Projects)
	out.Blog = cloneSection(c.Blog)
	out.Dynamic = cloneSection(c.Dynamic)
	out.Layout = cloneSection(c.Layout)
	out.Sponsors = cloneSection(c.Sponsors)
	out.Extras = cloneSection(c.Extras)
	return out
}

func cloneSection[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Sections returns the TOML names of the configured sections, in file order.
func (c *Config) Sections() []string {
	var out []string
	if c.Meta != (Meta{}) {
		out = append(out, "meta")
	}
	add := func(name string, present bool) {
		if present {
			out = append(out, name)
		}
	}
	add("header", c.Header != nil)
	add("about", c.About != nil)
	add("social", c.Social != nil)
	add("skills", c.Skills != nil)
	add("stats", c.Stats != nil)
	add("projects", c.Projects != nil)
	add("blog", c.Blog != nil)
	add("dynamic", c.Dynamic != nil)
	add("layout", c.Layout != nil)
	add("sponsors", c.Sponsors != nil)
	add("extras", c.Extras != nil)
	return out
}
