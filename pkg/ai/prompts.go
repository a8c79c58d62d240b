package ai

import "fmt"

// ChatSystemInstruction sets the assistant's persona.
const ChatSystemInstruction = "You are a helpful, polite home assistant bot. You help with recipes, cleaning tips, and general questions. Keep answers concise."

// TranslatePrompt asks for the instruction in the three helper languages.
// Providers answer with a JSON object keyed zh, en and id_lang.
func TranslatePrompt(text string) string {
	return fmt.Sprintf(`Translate the following household instruction into Chinese (Traditional), English, and Indonesian.
Input: "%s"
Return JSON only, as an object with the keys "zh", "en" and "id_lang".`, text)
}

// rawTranslation is the provider-side JSON shape.
type rawTranslation struct {
	Zh     string `json:"zh"`
	En     string `json:"en"`
	IDLang string `json:"id_lang"`
}
