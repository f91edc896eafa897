package domain

// Recording is one published sermon recording: the audio file and an
// optional transcript grouped from the messages folder.
type Recording struct {
	Date    string      `json:"date"`
	Speaker string      `json:"speaker"`
	Title   string      `json:"title"`
	Audio   *Attachment `json:"audio,omitempty"`
	Text    *Attachment `json:"text,omitempty"`
	Tags    Tags        `json:"tags"`
}
