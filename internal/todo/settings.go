package todo

// PrimaryColor enumerates the theme colors the product ships.
type PrimaryColor string

const (
	ColorOrange PrimaryColor = "orange"
	ColorGreen  PrimaryColor = "green"
	ColorBlue   PrimaryColor = "blue"
	ColorPurple PrimaryColor = "purple"
)

// DefaultModel is the chat-completion model used when none is configured.
const DefaultModel = "doubao-1.5-lite-32k-250115"

// ThemeSettings controls the presentation theme.
type ThemeSettings struct {
	PrimaryColor PrimaryColor `json:"primaryColor"`
	Animations   bool         `json:"animations"`
}

// NotificationSettings controls which notices the user receives.
type NotificationSettings struct {
	Reminder    bool `json:"reminder"`
	Celebration bool `json:"celebration"`
}

// Settings is the per-installation singleton configuration. The API key
// is stored in plaintext alongside the other settings.
type Settings struct {
	APIKey        string               `json:"apiKey,omitempty"`
	Model         string               `json:"model,omitempty"`
	Theme         ThemeSettings        `json:"theme"`
	Notifications NotificationSettings `json:"notifications"`
	AutoSave      bool                 `json:"autoSave"`
	Language      string               `json:"language"`
	Sound         bool                 `json:"sound"`
}

// DefaultSettings returns the documented defaults applied on first read and
// merged under stored values.
func DefaultSettings() Settings {
	return Settings{
		Model: DefaultModel,
		Theme: ThemeSettings{
			PrimaryColor: ColorOrange,
			Animations:   true,
		},
		Notifications: NotificationSettings{
			Reminder:    true,
			Celebration: true,
		},
		AutoSave: true,
		Language: "zh-CN",
		Sound:    true,
	}
}

// ValidPrimaryColors returns the accepted theme colors.
func ValidPrimaryColors() []PrimaryColor {
	return []PrimaryColor{ColorOrange, ColorGreen, ColorBlue, ColorPurple}
}
