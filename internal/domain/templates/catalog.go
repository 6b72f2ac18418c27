package templates

// catalogOrder fixes the listing order of the built-in themes.
var catalogOrder = []string{"professional", "creative", "minimal", "tech", "bold"}

var catalog = map[string]Theme{
	"professional": {
		Name:        "Professional",
		Description: "Clean corporate look with a calm blue palette",
		Colors: ThemeColors{
			Primary:       "#2563eb",
			Secondary:     "#1e40af",
			Accent:        "#3b82f6",
			Background:    "#ffffff",
			Surface:       "#f8fafc",
			Text:          "#1e293b",
			TextSecondary: "#64748b",
		},
		Fonts: ThemeFonts{
			Heading: "'Inter', sans-serif",
			Body:    "'Inter', sans-serif",
		},
		Gradients: ThemeGradients{
			Hero:    "linear-gradient(135deg, #2563eb 0%, #1e40af 100%)",
			Section: "linear-gradient(180deg, #f8fafc 0%, #ffffff 100%)",
		},
		Spacing: ThemeSpacing{
			HeroHeight:        "600px",
			SectionPadding:    "80px",
			ContainerMaxWidth: "1200px",
		},
		BorderRadius: ThemeRadius{
			Small:  "6px",
			Medium: "12px",
			Large:  "24px",
		},
		Shadows: ThemeShadows{
			Card:   "0 4px 6px -1px rgba(0, 0, 0, 0.1)",
			Hero:   "0 25px 50px -12px rgba(37, 99, 235, 0.25)",
			Button: "0 4px 14px 0 rgba(37, 99, 235, 0.39)",
		},
	},
	"creative": {
		Name:        "Creative",
		Description: "Playful purple-and-pink look for creative courses",
		Colors: ThemeColors{
			Primary:       "#7c3aed",
			Secondary:     "#a855f7",
			Accent:        "#ec4899",
			Background:    "#ffffff",
			Surface:       "#faf5ff",
			Text:          "#2e1065",
			TextSecondary: "#7e22ce",
		},
		Fonts: ThemeFonts{
			Heading: "'Poppins', sans-serif",
			Body:    "'Open Sans', sans-serif",
		},
		Gradients: ThemeGradients{
			Hero:    "linear-gradient(135deg, #7c3aed 0%, #ec4899 100%)",
			Section: "linear-gradient(180deg, #faf5ff 0%, #ffffff 100%)",
		},
		Spacing: ThemeSpacing{
			HeroHeight:        "650px",
			SectionPadding:    "90px",
			ContainerMaxWidth: "1180px",
		},
		BorderRadius: ThemeRadius{
			Small:  "8px",
			Medium: "16px",
			Large:  "32px",
		},
		Shadows: ThemeShadows{
			Card:   "0 10px 15px -3px rgba(124, 58, 237, 0.1)",
			Hero:   "0 25px 50px -12px rgba(124, 58, 237, 0.3)",
			Button: "0 4px 14px 0 rgba(236, 72, 153, 0.4)",
		},
	},
	"minimal": {
		Name:        "Minimal",
		Description: "Monochrome, typography-first, lots of whitespace",
		Colors: ThemeColors{
			Primary:       "#18181b",
			Secondary:     "#3f3f46",
			Accent:        "#71717a",
			Background:    "#ffffff",
			Surface:       "#fafafa",
			Text:          "#18181b",
			TextSecondary: "#52525b",
		},
		Fonts: ThemeFonts{
			Heading: "'Playfair Display', serif",
			Body:    "'Source Sans Pro', sans-serif",
		},
		Gradients: ThemeGradients{
			Hero:    "linear-gradient(180deg, #fafafa 0%, #ffffff 100%)",
			Section: "linear-gradient(180deg, #ffffff 0%, #fafafa 100%)",
		},
		Spacing: ThemeSpacing{
			HeroHeight:        "520px",
			SectionPadding:    "100px",
			ContainerMaxWidth: "1080px",
		},
		BorderRadius: ThemeRadius{
			Small:  "2px",
			Medium: "4px",
			Large:  "8px",
		},
		Shadows: ThemeShadows{
			Card:   "0 1px 3px 0 rgba(0, 0, 0, 0.1)",
			Hero:   "none",
			Button: "none",
		},
	},
	"tech": {
		Name:        "Tech",
		Description: "Dark mode with neon green accents for technical courses",
		Colors: ThemeColors{
			Primary:       "#10b981",
			Secondary:     "#059669",
			Accent:        "#34d399",
			Background:    "#0f172a",
			Surface:       "#1e293b",
			Text:          "#f1f5f9",
			TextSecondary: "#94a3b8",
		},
		Fonts: ThemeFonts{
			Heading: "'Space Grotesk', sans-serif",
			Body:    "'IBM Plex Sans', sans-serif",
		},
		Gradients: ThemeGradients{
			Hero:    "linear-gradient(135deg, #0f172a 0%, #134e4a 100%)",
			Section: "linear-gradient(180deg, #1e293b 0%, #0f172a 100%)",
		},
		Spacing: ThemeSpacing{
			HeroHeight:        "620px",
			SectionPadding:    "80px",
			ContainerMaxWidth: "1240px",
		},
		BorderRadius: ThemeRadius{
			Small:  "4px",
			Medium: "8px",
			Large:  "16px",
		},
		Shadows: ThemeShadows{
			Card:   "0 4px 6px -1px rgba(0, 0, 0, 0.4)",
			Hero:   "0 25px 50px -12px rgba(16, 185, 129, 0.2)",
			Button: "0 0 20px rgba(16, 185, 129, 0.5)",
		},
	},
	"bold": {
		Name:        "Bold",
		Description: "High contrast red-and-black for maximum impact",
		Colors: ThemeColors{
			Primary:       "#dc2626",
			Secondary:     "#991b1b",
			Accent:        "#f59e0b",
			Background:    "#ffffff",
			Surface:       "#fef2f2",
			Text:          "#111827",
			TextSecondary: "#4b5563",
		},
		Fonts: ThemeFonts{
			Heading: "'Montserrat', sans-serif",
			Body:    "'Roboto', sans-serif",
		},
		Gradients: ThemeGradients{
			Hero:    "linear-gradient(135deg, #dc2626 0%, #7f1d1d 100%)",
			Section: "linear-gradient(180deg, #fef2f2 0%, #ffffff 100%)",
		},
		Spacing: ThemeSpacing{
			HeroHeight:        "680px",
			SectionPadding:    "88px",
			ContainerMaxWidth: "1200px",
		},
		BorderRadius: ThemeRadius{
			Small:  "4px",
			Medium: "10px",
			Large:  "20px",
		},
		Shadows: ThemeShadows{
			Card:   "0 10px 15px -3px rgba(220, 38, 38, 0.1)",
			Hero:   "0 25px 50px -12px rgba(220, 38, 38, 0.35)",
			Button: "0 4px 14px 0 rgba(220, 38, 38, 0.45)",
		},
	},
}
