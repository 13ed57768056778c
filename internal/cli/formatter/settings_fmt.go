package formatter

import (
	"strings"

	"github.com/alexanderramin/tasktory/internal/settings"
)

// FormatSettings renders a settings view grouped by section.
func FormatSettings(entries []settings.Entry) string {
	var b strings.Builder
	section := ""
	var pairs [][2]string
	flush := func() {
		if len(pairs) == 0 {
			return
		}
		b.WriteString(Header(section) + "\n")
		b.WriteString(RenderKeyValues(pairs) + "\n")
		pairs = nil
	}
	for _, e := range entries {
		group, name, _ := strings.Cut(string(e.Key), ".")
		if group != section {
			flush()
			section = group
		}
		pairs = append(pairs, [2]string{name, OrDash(e.Value)})
	}
	flush()
	return RenderBox("Settings", strings.TrimRight(b.String(), "\n"))
}
