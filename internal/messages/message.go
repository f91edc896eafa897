// Package messages implements the sermon-recording filename codec. A
// recording file encodes its metadata in the name:
//
//	2021-03-21T2200_Jakub Vrtaňa, Richard Sikora_Silné kázání_#tag #tag2.mp3
//
// The title segment escapes characters that are unsafe in filenames.
package messages

import (
	"regexp"
	"strings"
)

var namePattern = regexp.MustCompile(
	`^(?P<date>\d{4}-\d\d-\d\d)(?:T(?P<time>\d\d\d\d))?` +
		`_(?P<speakers>[\p{L} ,]*)` +
		`_(?P<title>[\p{L}\d ;,.!@#$%&()+=-]*?)` +
		`(?:_(?P<tags>(?:#[a-zA-Z][a-zA-Z0-9]* ?)+))?` +
		`(?:\.(?P<filetype>\w+))?$`)

var speakerSep = regexp.MustCompile(`, ?`)

// Message is the metadata parsed out of one recording filename.
type Message struct {
	Date     string   `json:"date"`
	Time     string   `json:"time,omitempty"`
	Speakers []string `json:"speakers"`
	Title    string   `json:"title"`
	Tags     []string `json:"tags"`
	File     string   `json:"file"`
	FileType string   `json:"filetype,omitempty"`
}

// Parse decodes a recording filename. The second return value is false
// when the name does not match the codec.
func Parse(file string) (Message, bool) {
	m := namePattern.FindStringSubmatch(file)
	if m == nil {
		return Message{}, false
	}
	group := func(name string) string {
		return m[namePattern.SubexpIndex(name)]
	}

	msg := Message{
		Date:     group("date"),
		Title:    decode(group("title")),
		Speakers: []string{},
		Tags:     []string{},
		File:     file,
		FileType: group("filetype"),
	}
	if t := group("time"); t != "" {
		msg.Time = t[:2] + ":" + t[2:]
	}
	if s := group("speakers"); s != "" {
		msg.Speakers = speakerSep.Split(s, -1)
	}
	if tags := strings.TrimSpace(group("tags")); tags != "" {
		msg.Tags = strings.Split(tags, " ")
	}
	return msg, true
}

// String re-encodes the message into its filename form. It is the exact
// inverse of Parse for any filename Parse accepts.
func (m Message) String() string {
	var b strings.Builder
	b.WriteString(m.Date)
	if m.Time != "" {
		b.WriteString("T")
		b.WriteString(strings.Replace(m.Time, ":", "", 1))
	}
	b.WriteString("_")
	b.WriteString(strings.Join(m.Speakers, ", "))
	b.WriteString("_")
	b.WriteString(encode(m.Title))
	if len(m.Tags) > 0 {
		b.WriteString("_")
		b.WriteString(strings.Join(m.Tags, " "))
	}
	if m.FileType != "" {
		b.WriteString(".")
		b.WriteString(m.FileType)
	}
	return b.String()
}

// escapes maps filename-unsafe characters onto their escape sequences.
// Order matters: '#' must encode first and decode first so escape
// sequences never collide with literal text.
var escapes = []struct{ plain, escaped string }{
	{"#", "#h"},
	{"_", "#u"},
	{"?", "#q"},
	{":", "#c"},
	{"*", "#a"},
	{`"`, "#Q"},
	{"/", "#s"},
	{"|", "#p"},
}

func encode(text string) string {
	for _, e := range escapes {
		text = strings.ReplaceAll(text, e.plain, e.escaped)
	}
	return text
}

func decode(text string) string {
	for _, e := range escapes {
		text = strings.ReplaceAll(text, e.escaped, e.plain)
	}
	return text
}
