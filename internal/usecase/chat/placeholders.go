package chat

import "strings"

// Placeholders are the global tokens substituted into every non-encyclopedia answer.
type Placeholders struct {
	BotName        string
	DeveloperName  string
	DeveloperEmail string
	BugReportURL   string
}

func (p Placeholders) replacer() *strings.Replacer {
	return strings.NewReplacer(
		"[BOT_NAME]", p.BotName,
		"[DEVELOPER_NAME]", p.DeveloperName,
		"[DEVELOPER_EMAIL]", p.DeveloperEmail,
		"[BUG_URL]", p.BugReportURL,
	)
}
