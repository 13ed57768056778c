// Package settings holds the user-editable application settings: external
// integrations, notification toggles and system options.
//
// Settings is a plain value. Every change goes through Apply with one of the
// recognised Keys, which validates the new value and returns an updated copy.
package settings

type Settings struct {
	OpenAI        OpenAI        `yaml:"openai"`
	N8N           N8N           `yaml:"n8n"`
	Jira          Atlassian     `yaml:"jira"`
	Confluence    Atlassian     `yaml:"confluence"`
	Notion        Notion        `yaml:"notion"`
	Notifications Notifications `yaml:"notifications"`
	System        System        `yaml:"system"`
}

type OpenAI struct {
	APIKey string `yaml:"api_key"`
}

type N8N struct {
	ServerURL  string `yaml:"server_url"`
	APIKey     string `yaml:"api_key"`
	WorkflowID string `yaml:"workflow_id"`
}

// Atlassian covers both Jira and Confluence, which share a credential shape.
type Atlassian struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	APIToken string `yaml:"api_token"`
}

type Notion struct {
	APIKey     string `yaml:"api_key"`
	DatabaseID string `yaml:"database_id"`
}

type Notifications struct {
	Email           bool   `yaml:"email"`
	Slack           bool   `yaml:"slack"`
	SlackWebhookURL string `yaml:"slack_webhook_url"`
}

type System struct {
	AutoBackup  bool   `yaml:"auto_backup"`
	LogLevel    string `yaml:"log_level"`
	MaxFileSize string `yaml:"max_file_size"`
}

// Defaults returns the settings a fresh install starts with.
func Defaults() Settings {
	return Settings{
		N8N: N8N{
			ServerURL:  "http://localhost:5678",
			WorkflowID: "n8n-mcp-llm-workflow",
		},
		Notifications: Notifications{Email: true},
		System: System{
			AutoBackup:  true,
			LogLevel:    "INFO",
			MaxFileSize: "100MB",
		},
	}
}

// Reset returns the defaults. It exists so callers never build a partially
// zeroed Settings by hand.
func (s Settings) Reset() Settings {
	return Defaults()
}
