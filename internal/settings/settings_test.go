package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_ReturnsUpdatedCopy(t *testing.T) {
	orig := Defaults()
	next, err := orig.Apply(KeyJiraURL, "https://acme.atlassian.net")
	require.NoError(t, err)

	assert.Equal(t, "https://acme.atlassian.net", next.Jira.URL)
	assert.Empty(t, orig.Jira.URL, "receiver is not modified")
}

func TestApply_UnknownKey(t *testing.T) {
	_, err := Defaults().Apply("jira.password", "x")
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, err = ParseKey("nope")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestApply_Validation(t *testing.T) {
	tests := []struct {
		name    string
		key     Key
		value   string
		want    string
		wantErr bool
	}{
		{"url ok", KeyN8NServerURL, "http://localhost:5678", "http://localhost:5678", false},
		{"url cleared", KeySlackWebhookURL, "", "", false},
		{"url no scheme", KeyConfluenceURL, "wiki.example.com", "", true},
		{"url ftp", KeyJiraURL, "ftp://example.com", "", true},
		{"bool true", KeySlackNotifications, "true", "true", false},
		{"bool numeric", KeyAutoBackup, "0", "false", false},
		{"bool junk", KeyEmailNotifications, "sometimes", "", true},
		{"log level case", KeyLogLevel, "debug", "DEBUG", false},
		{"log level bad", KeyLogLevel, "TRACE", "", true},
		{"size ok", KeyMaxFileSize, "500mb", "500MB", false},
		{"size bad unit", KeyMaxFileSize, "5TB", "", true},
		{"size zero", KeyMaxFileSize, "0MB", "", true},
		{"free text", KeyNotionDatabaseID, "  abc123  ", "abc123", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Defaults().Apply(tc.key, tc.value)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			got, err := s.Get(tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseKey_Normalizes(t *testing.T) {
	k, err := ParseKey("  System.Log_Level ")
	require.NoError(t, err)
	assert.Equal(t, KeyLogLevel, k)
}

func TestKeys_CoverEveryEntry(t *testing.T) {
	keys := Keys()
	assert.Len(t, keys, 18)
	assert.Equal(t, KeyOpenAIAPIKey, keys[0])
	assert.Len(t, Defaults().View(), len(keys))
}

func TestView_MasksSecrets(t *testing.T) {
	s, err := Defaults().Apply(KeyJiraAPIToken, "tok-123")
	require.NoError(t, err)

	view := map[Key]string{}
	for _, e := range s.View() {
		view[e.Key] = e.Value
	}
	assert.Equal(t, "***", view[KeyJiraAPIToken])
	assert.Equal(t, "", view[KeyNotionAPIKey], "unset secrets show empty")
	assert.Equal(t, "http://localhost:5678", view[KeyN8NServerURL])
	assert.True(t, KeyJiraAPIToken.Secret())
	assert.False(t, KeyJiraURL.Secret())
}

func TestReset(t *testing.T) {
	s, err := Defaults().Apply(KeyLogLevel, "ERROR")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s.Reset())
}

func TestMaxFileSizeBytes(t *testing.T) {
	assert.Equal(t, int64(100<<20), Defaults().MaxFileSizeBytes())

	s, err := Defaults().Apply(KeyMaxFileSize, "2GB")
	require.NoError(t, err)
	assert.Equal(t, int64(2<<30), s.MaxFileSizeBytes())

	s.System.MaxFileSize = "lots"
	assert.Equal(t, int64(0), s.MaxFileSizeBytes())
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	st := NewStore(path)

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), loaded, "missing file yields defaults")

	s, err := loaded.Apply(KeyNotionAPIKey, "secret")
	require.NoError(t, err)
	s, err = s.Apply(KeySlackNotifications, "true")
	require.NoError(t, err)
	require.NoError(t, st.Save(s))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	back, err := st.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(s, back); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jira:\n  url: https://jira.example.com\n"), 0o600))

	s, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "https://jira.example.com", s.Jira.URL)
	assert.Equal(t, "INFO", s.System.LogLevel)
	assert.True(t, s.Notifications.Email)
}

func TestStore_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jira: [unclosed"), 0o600))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}
