package settings

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnknownKey is returned for a key outside the recognised set.
var ErrUnknownKey = errors.New("unknown settings key")

// Key names one recognised setting.
type Key string

const (
	KeyOpenAIAPIKey       Key = "openai.api_key"
	KeyN8NServerURL       Key = "n8n.server_url"
	KeyN8NAPIKey          Key = "n8n.api_key"
	KeyN8NWorkflowID      Key = "n8n.workflow_id"
	KeyJiraURL            Key = "jira.url"
	KeyJiraUsername       Key = "jira.username"
	KeyJiraAPIToken       Key = "jira.api_token"
	KeyConfluenceURL      Key = "confluence.url"
	KeyConfluenceUsername Key = "confluence.username"
	KeyConfluenceAPIToken Key = "confluence.api_token"
	KeyNotionAPIKey       Key = "notion.api_key"
	KeyNotionDatabaseID   Key = "notion.database_id"
	KeyEmailNotifications Key = "notifications.email"
	KeySlackNotifications Key = "notifications.slack"
	KeySlackWebhookURL    Key = "notifications.slack_webhook_url"
	KeyAutoBackup         Key = "system.auto_backup"
	KeyLogLevel           Key = "system.log_level"
	KeyMaxFileSize        Key = "system.max_file_size"
)

type kind int

const (
	kindText kind = iota
	kindSecret
	kindURL
	kindBool
	kindLogLevel
	kindSize
)

type keySpec struct {
	key  Key
	kind kind
	text func(*Settings) *string
	flag func(*Settings) *bool
}

// specs is ordered the way keys are listed to the user.
var specs = []keySpec{
	{key: KeyOpenAIAPIKey, kind: kindSecret, text: func(s *Settings) *string { return &s.OpenAI.APIKey }},
	{key: KeyN8NServerURL, kind: kindURL, text: func(s *Settings) *string { return &s.N8N.ServerURL }},
	{key: KeyN8NAPIKey, kind: kindSecret, text: func(s *Settings) *string { return &s.N8N.APIKey }},
	{key: KeyN8NWorkflowID, kind: kindText, text: func(s *Settings) *string { return &s.N8N.WorkflowID }},
	{key: KeyJiraURL, kind: kindURL, text: func(s *Settings) *string { return &s.Jira.URL }},
	{key: KeyJiraUsername, kind: kindText, text: func(s *Settings) *string { return &s.Jira.Username }},
	{key: KeyJiraAPIToken, kind: kindSecret, text: func(s *Settings) *string { return &s.Jira.APIToken }},
	{key: KeyConfluenceURL, kind: kindURL, text: func(s *Settings) *string { return &s.Confluence.URL }},
	{key: KeyConfluenceUsername, kind: kindText, text: func(s *Settings) *string { return &s.Confluence.Username }},
	{key: KeyConfluenceAPIToken, kind: kindSecret, text: func(s *Settings) *string { return &s.Confluence.APIToken }},
	{key: KeyNotionAPIKey, kind: kindSecret, text: func(s *Settings) *string { return &s.Notion.APIKey }},
	{key: KeyNotionDatabaseID, kind: kindText, text: func(s *Settings) *string { return &s.Notion.DatabaseID }},
	{key: KeyEmailNotifications, kind: kindBool, flag: func(s *Settings) *bool { return &s.Notifications.Email }},
	{key: KeySlackNotifications, kind: kindBool, flag: func(s *Settings) *bool { return &s.Notifications.Slack }},
	{key: KeySlackWebhookURL, kind: kindURL, text: func(s *Settings) *string { return &s.Notifications.SlackWebhookURL }},
	{key: KeyAutoBackup, kind: kindBool, flag: func(s *Settings) *bool { return &s.System.AutoBackup }},
	{key: KeyLogLevel, kind: kindLogLevel, text: func(s *Settings) *string { return &s.System.LogLevel }},
	{key: KeyMaxFileSize, kind: kindSize, text: func(s *Settings) *string { return &s.System.MaxFileSize }},
}

// LogLevels lists the accepted system.log_level values.
var LogLevels = []string{"DEBUG", "INFO", "WARNING", "ERROR"}

var sizePattern = regexp.MustCompile(`^([1-9][0-9]*)(KB|MB|GB)$`)

// Keys returns every recognised key in display order.
func Keys() []Key {
	keys := make([]Key, len(specs))
	for i, sp := range specs {
		keys[i] = sp.key
	}
	return keys
}

// ParseKey maps user input to a recognised key.
func ParseKey(s string) (Key, error) {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := lookup(k); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
	}
	return k, nil
}

// Secret reports whether the key's value is masked in views.
func (k Key) Secret() bool {
	sp, ok := lookup(k)
	return ok && sp.kind == kindSecret
}

func lookup(k Key) (keySpec, bool) {
	for _, sp := range specs {
		if sp.key == k {
			return sp, true
		}
	}
	return keySpec{}, false
}

// Apply validates value for key and returns a copy of s with it set. s itself
// is never modified.
func (s Settings) Apply(key Key, value string) (Settings, error) {
	sp, ok := lookup(key)
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	value = strings.TrimSpace(value)

	if sp.kind == kindBool {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return s, fmt.Errorf("%s: expected true or false, got %q", key, value)
		}
		*sp.flag(&s) = b
		return s, nil
	}

	normalized, err := normalize(sp.kind, value)
	if err != nil {
		return s, fmt.Errorf("%s: %w", key, err)
	}
	*sp.text(&s) = normalized
	return s, nil
}

// Get returns the raw value of key.
func (s Settings) Get(key Key) (string, error) {
	sp, ok := lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if sp.kind == kindBool {
		return strconv.FormatBool(*sp.flag(&s)), nil
	}
	return *sp.text(&s), nil
}

func normalize(k kind, value string) (string, error) {
	switch k {
	case kindURL:
		if value == "" {
			return "", nil
		}
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return "", fmt.Errorf("invalid URL %q (need http:// or https:// with a host)", value)
		}
		return value, nil
	case kindLogLevel:
		upper := strings.ToUpper(value)
		for _, l := range LogLevels {
			if upper == l {
				return upper, nil
			}
		}
		return "", fmt.Errorf("invalid log level %q (%s)", value, strings.Join(LogLevels, "|"))
	case kindSize:
		upper := strings.ToUpper(value)
		if !sizePattern.MatchString(upper) {
			return "", fmt.Errorf("invalid size %q (e.g. 100MB)", value)
		}
		return upper, nil
	default:
		return value, nil
	}
}

// MaxFileSizeBytes converts System.MaxFileSize to bytes. An unparseable
// value yields 0.
func (s Settings) MaxFileSizeBytes() int64 {
	m := sizePattern.FindStringSubmatch(strings.ToUpper(s.System.MaxFileSize))
	if m == nil {
		return 0
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0
	}
	switch m[2] {
	case "KB":
		return n << 10
	case "MB":
		return n << 20
	default:
		return n << 30
	}
}

// Entry is one key/value row of a settings view.
type Entry struct {
	Key   Key
	Value string
}

// View lists every setting in key order with secrets masked.
func (s Settings) View() []Entry {
	entries := make([]Entry, 0, len(specs))
	for _, sp := range specs {
		v, _ := s.Get(sp.key)
		if sp.kind == kindSecret && v != "" {
			v = "***"
		}
		entries = append(entries, Entry{Key: sp.key, Value: v})
	}
	return entries
}
