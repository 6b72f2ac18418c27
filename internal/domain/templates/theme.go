package templates

// Theme is a named visual preset for a landing page. Themes are immutable
// and live in a fixed catalog; pages reference them by string key only.
type Theme struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	Colors       ThemeColors    `json:"colors"`
	Fonts        ThemeFonts     `json:"fonts"`
	Gradients    ThemeGradients `json:"gradients"`
	Spacing      ThemeSpacing   `json:"spacing"`
	BorderRadius ThemeRadius    `json:"border_radius"`
	Shadows      ThemeShadows   `json:"shadows"`
}

type ThemeColors struct {
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary"`
	Accent        string `json:"accent"`
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	Text          string `json:"text"`
	TextSecondary string `json:"text_secondary"`
}

type ThemeFonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type ThemeGradients struct {
	Hero    string `json:"hero"`
	Section string `json:"section"`
}

type ThemeSpacing struct {
	HeroHeight        string `json:"hero_height"`
	SectionPadding    string `json:"section_padding"`
	ContainerMaxWidth string `json:"container_max_width"`
}

type ThemeRadius struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

type ThemeShadows struct {
	Card   string `json:"card"`
	Hero   string `json:"hero"`
	Button string `json:"button"`
}

// Get returns the theme for key, or nil when the key is unknown.
// Callers must fall back rather than dereference a nil theme.
func Get(key string) *Theme {
	t, ok := catalog[key]
	if !ok {
		return nil
	}
	return &t
}

// Keys returns the catalog keys in their fixed catalog order.
// The strings are part of the persisted-page contract and must not change.
func Keys() []string {
	out := make([]string, len(catalogOrder))
	copy(out, catalogOrder)
	return out
}
