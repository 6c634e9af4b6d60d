package server

import (
	"strings"

	"github.com/iw2rmb/ghostline/completion"
)

// CursorMarker stands for the caret in the user message.
const CursorMarker = "<cursor>"

// Messages is one chat turn for a Completer.
type Messages struct {
	System string
	User   string
}

const personaTemplate = `# Role
You are an accomplished author who can write in any style. Your only job is to
infer what belongs at the ` + CursorMarker + ` position of the given text.%s

# Rules
- Reply with the completion text alone. Never add reasoning, commands, hints,
  explanations or notes.
- Match the language, grammar, tone and vocabulary of the surrounding text.
- If the text before the cursor is complete, write the most likely next
  sentence. If the text around the cursor does not connect, write what must be
  inserted at the cursor (at most one sentence) to make it read smoothly. If
  the text trails off, finish what the author was about to write.
- The completion must be logical and fit the topic, context and style.
- If the text is empty, still reply with nothing but completion text.

# Examples
Text: "I went to the park today and saw many beautiful flowers.` + CursorMarker + `"
Completion: " They came in every colour and looked wonderful."

Text: "Tom loves reading; he often visits the ` + CursorMarker + ` library."
Completion: "quiet downtown"

Text: "The curious cat quietly` + CursorMarker + ` to catch a colorful butterfly."
Completion: " climbed the crooked fence"`

// BuildMessages turns a completion request into a chat turn. A non-blank
// prompt is embedded in the system instruction as the requested style.
func BuildMessages(req completion.Request) Messages {
	style := ""
	if p := strings.TrimSpace(req.Prompt); p != "" {
		style = "\nYou are currently writing as follows: " + p + "."
	}
	return Messages{
		System: strings.Replace(personaTemplate, "%s", style, 1),
		User:   req.Before + CursorMarker + req.After,
	}
}
