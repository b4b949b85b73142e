package cmd

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stepmate/stepmate/internal/todo"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change user settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting. Supported keys:

  api-key         API key for the decomposition service
  model           Model identifier
  theme           Primary color (orange, green, blue, purple)
  animations      Enable UI animations (true/false)
  reminder        Enable reminders (true/false)
  celebration     Show the completion celebration (true/false)
  auto-save       Save automatically (true/false)
  language        Interface language tag
  sound           Enable sounds (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the API connection",
	RunE:  runSettingsTest,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsTestCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	st, logger, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	s, err := st.GetSettings()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("api-key:      %s\n", maskKey(s.APIKey))
	fmt.Printf("model:        %s\n", s.Model)
	fmt.Printf("theme:        %s\n", s.Theme.PrimaryColor)
	fmt.Printf("animations:   %v\n", s.Theme.Animations)
	fmt.Printf("reminder:     %v\n", s.Notifications.Reminder)
	fmt.Printf("celebration:  %v\n", s.Notifications.Celebration)
	fmt.Printf("auto-save:    %v\n", s.AutoSave)
	fmt.Printf("language:     %s\n", s.Language)
	fmt.Printf("sound:        %v\n", s.Sound)
	fmt.Println()
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	st, logger, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	s, err := st.GetSettings()
	if err != nil {
		return err
	}

	if err := applySetting(&s, args[0], args[1]); err != nil {
		return err
	}
	if err := st.SaveSettings(s); err != nil {
		return err
	}

	fmt.Printf("已更新 %s\n", args[0])
	return nil
}

// applySetting writes one key-value pair into the settings struct.
func applySetting(s *todo.Settings, key, value string) error {
	switch key {
	case "api-key":
		s.APIKey = strings.TrimSpace(value)
	case "model":
		s.Model = strings.TrimSpace(value)
	case "theme":
		color := todo.PrimaryColor(value)
		if !slices.Contains(todo.ValidPrimaryColors(), color) {
			return fmt.Errorf("theme must be one of: orange, green, blue, purple")
		}
		s.Theme.PrimaryColor = color
	case "language":
		s.Language = value
	case "animations", "reminder", "celebration", "auto-save", "sound":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false", key)
		}
		switch key {
		case "animations":
			s.Theme.Animations = b
		case "reminder":
			s.Notifications.Reminder = b
		case "celebration":
			s.Notifications.Celebration = b
		case "auto-save":
			s.AutoSave = b
		case "sound":
			s.Sound = b
		}
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func runSettingsTest(cmd *cobra.Command, args []string) error {
	st, logger, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	settings, err := st.GetSettings()
	if err != nil {
		return err
	}
	client := buildClient(settings, logger)

	result := client.TestConnection(context.Background())
	if result.Success {
		fmt.Println("连接成功")
		return nil
	}
	fmt.Println(result.Error)
	return nil
}

// maskKey hides all but the tail of an API key.
func maskKey(key string) string {
	if key == "" {
		return "（未配置）"
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
