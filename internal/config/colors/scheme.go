package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for headings, field labels, borders)
	Accent string `yaml:"accent"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Invoice status colors
	Draft   string `yaml:"draft"`
	Sent    string `yaml:"sent"`
	Paid    string `yaml:"paid"`
	Overdue string `yaml:"overdue"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "dragon":
		return Dragon()
	case "wave":
		return Wave()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// Presets lists the names GetPreset understands
var Presets = []string{"default", "monochrome", "dragon", "wave", "lotus"}

// StatusColor returns the color for an invoice status name
func (c *ColorScheme) StatusColor(status string) string {
	switch status {
	case "sent":
		return c.Sent
	case "paid":
		return c.Paid
	case "overdue":
		return c.Overdue
	default:
		return c.Draft
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Draft, preset.Draft)
	fill(&c.Sent, preset.Sent)
	fill(&c.Paid, preset.Paid)
	fill(&c.Overdue, preset.Overdue)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.WarningBg, preset.WarningBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}

// MergeFrom overrides c with every non-empty value in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	take := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	take(&c.Preset, other.Preset)
	take(&c.Accent, other.Accent)
	take(&c.Title, other.Title)
	take(&c.Subtle, other.Subtle)
	take(&c.Normal, other.Normal)
	take(&c.Draft, other.Draft)
	take(&c.Sent, other.Sent)
	take(&c.Paid, other.Paid)
	take(&c.Overdue, other.Overdue)
	take(&c.InfoFg, other.InfoFg)
	take(&c.InfoBg, other.InfoBg)
	take(&c.WarningFg, other.WarningFg)
	take(&c.WarningBg, other.WarningBg)
	take(&c.ErrorFg, other.ErrorFg)
	take(&c.ErrorBg, other.ErrorBg)
}
