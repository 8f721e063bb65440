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

package wizard

import (
	"slices"

	"github.com/cloud-exit/ghprofile/internal/profile"
	"github.com/cloud-exit/ghprofile/internal/widget"
)

// SkillCategory is one group of the Skills step. Field selects the matching
// list in profile.Skills.
type SkillCategory struct {
	Name  string
	Items []string
	Field func(*profile.Skills) *[]string
}

// SkillCategories defines the technologies offered in the Skills step.
// Values loaded from an existing profile are shown first in their own
// category, whether or not they are listed here.
var SkillCategories = []SkillCategory{
	{
		Name: "Languages",
		Items: []string{
			"Go", "Rust", "Python", "TypeScript", "JavaScript", "Java", "Kotlin",
			"C", "C++", "C#", "Ruby", "PHP", "Swift", "Dart", "Scala", "Elixir",
			"Haskell", "Lua", "Zig", "Bash",
		},
		Field: func(s *profile.Skills) *[]string { return &s.Languages },
	},
	{
		Name: "Frameworks",
		Items: []string{
			"React", "Vue", "Angular", "Svelte", "Next.js", "Node.js", "Express",
			"Django", "Flask", "FastAPI", "Spring", "Rails", "Laravel", "Gin",
			"Actix", "Axum", "Flutter", ".NET",
		},
		Field: func(s *profile.Skills) *[]string { return &s.Frameworks },
	},
	{
		Name: "Tools",
		Items: []string{
			"Git", "Docker", "Kubernetes", "Terraform", "Ansible", "Neovim",
			"VS Code", "Linux", "GitHub Actions", "Jenkins", "Grafana", "Prometheus",
			"Nginx", "Webpack", "Vite",
		},
		Field: func(s *profile.Skills) *[]string { return &s.Tools },
	},
	{
		Name: "Databases",
		Items: []string{
			"PostgreSQL", "MySQL", "SQLite", "MongoDB", "Redis", "Cassandra",
			"Elasticsearch", "DynamoDB", "MariaDB", "ClickHouse",
		},
		Field: func(s *profile.Skills) *[]string { return &s.Databases },
	},
	{
		Name: "Cloud",
		Items: []string{
			"AWS", "GCP", "Azure", "Cloudflare", "Vercel", "Netlify", "Heroku",
			"DigitalOcean", "Fly.io", "Firebase", "Supabase",
		},
		Field: func(s *profile.Skills) *[]string { return &s.Cloud },
	},
}

// skillCategoryList builds the categorized widget list for the Skills step,
// pre-selecting what skills already holds. Stored values lead their category
// in stored order, so committing an untouched list gives back the same skills.
func skillCategoryList(skills *profile.Skills) widget.SearchableList {
	stored := valueOf(skills)
	cats := make([]widget.Category, len(SkillCategories))
	selected := make(map[widget.ListItem]bool)
	for i, c := range SkillCategories {
		var labels []string
		for _, v := range *c.Field(&stored) {
			if !slices.Contains(labels, v) {
				labels = append(labels, v)
				selected[widget.ListItem{Label: v, Category: c.Name}] = true
			}
		}
		for _, v := range c.Items {
			if !slices.Contains(labels, v) {
				labels = append(labels, v)
			}
		}
		cats[i] = widget.Category{Name: c.Name, Labels: labels}
	}
	list := widget.NewCategorizedList(cats...)
	list.SetSelectedFunc(func(it widget.ListItem) bool {
		return selected[widget.ListItem{Label: it.Label, Category: it.Category}]
	})
	return list
}

// SocialPlatform describes one field of the Social step.
type SocialPlatform struct {
	Label       string
	Placeholder string
	Advanced    bool
	Field       func(*profile.Social) *string
}

// SocialPlatforms lists every platform in profile.Social, in file order.
var SocialPlatforms = []SocialPlatform{
	{"GitHub", "https://github.com/username", false, func(s *profile.Social) *string { return &s.GitHub }},
	{"Twitter / X", "https://twitter.com/username", false, func(s *profile.Social) *string { return &s.Twitter }},
	{"LinkedIn", "https://linkedin.com/in/username", false, func(s *profile.Social) *string { return &s.LinkedIn }},
	{"Mastodon", "https://mastodon.social/@username", true, func(s *profile.Social) *string { return &s.Mastodon }},
	{"Bluesky", "https://bsky.app/profile/username", true, func(s *profile.Social) *string { return &s.Bluesky }},
	{"Instagram", "https://instagram.com/username", true, func(s *profile.Social) *string { return &s.Instagram }},
	{"YouTube", "https://youtube.com/@username", true, func(s *profile.Social) *string { return &s.YouTube }},
	{"Discord", "https://discord.gg/invite", true, func(s *profile.Social) *string { return &s.Discord }},
	{"dev.to", "https://dev.to/username", true, func(s *profile.Social) *string { return &s.DevTo }},
	{"Hashnode", "https://hashnode.com/@username", true, func(s *profile.Social) *string { return &s.Hashnode }},
	{"Medium", "https://medium.com/@username", true, func(s *profile.Social) *string { return &s.Medium }},
	{"Stack Overflow", "https://stackoverflow.com/users/id", true, func(s *profile.Social) *string { return &s.StackOverflow }},
	{"Reddit", "https://reddit.com/u/username", true, func(s *profile.Social) *string { return &s.Reddit }},
	{"Twitch", "https://twitch.tv/username", true, func(s *profile.Social) *string { return &s.Twitch }},
	{"Website", "https://example.com", false, func(s *profile.Social) *string { return &s.Website }},
	{"Email", "you@example.com", false, func(s *profile.Social) *string { return &s.Email }},
	{"Ko-fi", "https://ko-fi.com/username", true, func(s *profile.Social) *string { return &s.KoFi }},
	{"RSS", "https://example.com/feed.xml", true, func(s *profile.Social) *string { return &s.RSS }},
}

// choice maps a display label to the value stored in the profile.
type choice struct {
	Label string
	Value string
}

var headerStyleChoices = []choice{
	{"Typing SVG", string(profile.HeaderTypingSVG)},
	{"Text greeting", string(profile.HeaderText)},
	{"Banner image", string(profile.HeaderBanner)},
	{"Wave", string(profile.HeaderWave)},
}

var templateChoices = []choice{
	{"Minimal", string(profile.TemplateMinimal)},
	{"Full", string(profile.TemplateFull)},
	{"Developer card", string(profile.TemplateDeveloperCard)},
	{"Multi-column", string(profile.TemplateMultiColumn)},
}

var displayChoices = []choice{
	{"Pin cards", string(profile.DisplayPinCards)},
	{"Markdown table", string(profile.DisplayMarkdownTable)},
}

var modeChoices = []choice{
	{"Basic (essential fields only)", ModeBasic.String()},
	{"Advanced (every field)", ModeAdvanced.String()},
}

// StatsThemes are the github-readme-stats themes offered in the Stats step.
var StatsThemes = []string{
	"default", "tokyonight", "dracula", "radical", "gruvbox", "onedark",
	"nord", "github_dark", "catppuccin_mocha", "merko", "cobalt", "synthwave",
}

// TopLangsLayouts are the layouts of the top languages card.
var TopLangsLayouts = []string{"compact", "normal", "donut", "donut-vertical", "pie"}

// plainChoices uses each value as its own label.
func plainChoices(values []string) []choice {
	out := make([]choice, len(values))
	for i, v := range values {
		out[i] = choice{Label: v, Value: v}
	}
	return out
}
