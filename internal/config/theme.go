package config

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - creation dialogs
	Edit   string `yaml:"edit"`   // Blue - edit dialogs
	Delete string `yaml:"delete"` // Red - delete confirmations

	// UI element colors
	ListBorder     string `yaml:"list_border"`
	CardBorder     string `yaml:"card_border"`
	CardBg         string `yaml:"card_bg"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar colors
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Semantic
		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF0000",

		// UI elements
		ListBorder:     "#5F87D7",
		CardBorder:     "#585858",
		CardBg:         "#262626",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",

		// Status bar
		StatusBarBg:   "#874BFD",
		StatusBarText: "#D0D0D0",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Semantic
		Create: "#FFFFFF",
		Edit:   "#FFFFFF",
		Delete: "#FFFFFF",

		// UI elements
		ListBorder:     "#FFFFFF",
		CardBorder:     "#585858",
		CardBg:         "#1C1C1C",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#3A3A3A",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",

		// Status bar
		StatusBarBg:   "#3A3A3A",
		StatusBarText: "#FFFFFF",
	}
}

// getPreset returns a preset color scheme by name
func getPreset(name string) ColorScheme {
	switch name {
	case "monochrome":
		return MonochromeColorScheme()
	default:
		return DefaultColorScheme()
	}
}

// MergeFrom overrides this scheme with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Accent != "" {
		c.Accent = other.Accent
	}
	if other.Create != "" {
		c.Create = other.Create
	}
	if other.Edit != "" {
		c.Edit = other.Edit
	}
	if other.Delete != "" {
		c.Delete = other.Delete
	}
	if other.ListBorder != "" {
		c.ListBorder = other.ListBorder
	}
	if other.CardBorder != "" {
		c.CardBorder = other.CardBorder
	}
	if other.CardBg != "" {
		c.CardBg = other.CardBg
	}
	if other.SelectedBorder != "" {
		c.SelectedBorder = other.SelectedBorder
	}
	if other.SelectedBg != "" {
		c.SelectedBg = other.SelectedBg
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Normal != "" {
		c.Normal = other.Normal
	}
	if other.InfoFg != "" {
		c.InfoFg = other.InfoFg
	}
	if other.InfoBg != "" {
		c.InfoBg = other.InfoBg
	}
	if other.WarningFg != "" {
		c.WarningFg = other.WarningFg
	}
	if other.WarningBg != "" {
		c.WarningBg = other.WarningBg
	}
	if other.ErrorFg != "" {
		c.ErrorFg = other.ErrorFg
	}
	if other.ErrorBg != "" {
		c.ErrorBg = other.ErrorBg
	}
	if other.StatusBarBg != "" {
		c.StatusBarBg = other.StatusBarBg
	}
	if other.StatusBarText != "" {
		c.StatusBarText = other.StatusBarText
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := getPreset(c.Preset)
	preset.MergeFrom(*c)
	*c = preset
}
