package model

// UnattributedSpeaker labels utterances with no recognizable speaker prefix
const UnattributedSpeaker = "unattributed"

// Utterance is a single sentence spoken by one participant
type Utterance struct {
	Speaker string `json:"speaker"` // Speaker label ("unattributed" when unknown)
	Text    string `json:"text"`    // The sentence text
	Order   int    `json:"order"`   // Position in conversation order (0-based)
}
