package formatter

import "strings"

const cardWrapWidth = 72

// ChatWelcome renders the banner shown when the interactive chat opens.
func ChatWelcome() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(StyleBlue.Render("  maitre") + StyleDim.Render(" assistant juridique"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n\n")
	b.WriteString(StyleDim.Render("  Décrivez votre situation juridique.") + "\n")
	b.WriteString(StyleDim.Render("  /reset pour une nouvelle conversation, /quit pour quitter.") + "\n\n")
	return b.String()
}

// AssistantReply renders the assistant text, indented and wrapped.
func AssistantReply(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString("  ")
		b.WriteString(wrapText(line, cardWrapWidth))
		b.WriteString("\n")
	}
	return b.String()
}

// Notice renders a non-fatal advisory, such as a degraded analysis.
func Notice(text string) string {
	return StyleAmber.Render("  ℹ " + text)
}

// wrapText wraps words onto lines no longer than width, preserving
// existing line breaks.
func wrapText(text string, width int) string {
	if width <= 0 {
		return strings.TrimSpace(text)
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			if len([]rune(current))+1+len([]rune(word)) <= width {
				current += " " + word
				continue
			}
			out = append(out, current)
			current = word
		}
		out = append(out, current)
	}

	return strings.Join(out, "\n")
}
