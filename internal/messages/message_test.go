package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtures = map[string]Message{
	"complete": {
		Date:     "2021-03-21",
		Time:     "22:00",
		Speakers: []string{"Jakub Vrtaňa", "Richard Sikora"},
		Title:    `Silné kázání 123 ;,.!@$%&-+= (_#?:*"/|)`,
		Tags:     []string{"#tag", "#tag2"},
		File:     "2021-03-21T2200_Jakub Vrtaňa, Richard Sikora_Silné kázání 123 ;,.!@$%&-+= (#u#h#q#c#a#Q#s#p)_#tag #tag2.mp3",
		FileType: "mp3",
	},
	"minimal": {
		Date:     "2021-03-22",
		Speakers: []string{},
		Title:    "",
		Tags:     []string{},
		File:     "2021-03-22__",
	},
}

func TestParse(t *testing.T) {
	for name, want := range fixtures {
		t.Run(name, func(t *testing.T) {
			got, ok := Parse(want.File)
			require.True(t, ok)
			assert.Equal(t, want, got)
		})
	}

	t.Run("rejects names outside the codec", func(t *testing.T) {
		for _, file := range []string{"", "poznámky.txt", "20210321_x_y.mp3"} {
			_, ok := Parse(file)
			assert.False(t, ok, "file %q", file)
		}
	})
}

func TestString(t *testing.T) {
	for name, msg := range fixtures {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, msg.File, msg.String())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	files := []string{
		fixtures["complete"].File,
		fixtures["minimal"].File,
		"2023-11-05_Jan Novák_O naději_#advent.mp3",
		"2023-11-05T0930_Jan Novák_Kdo#q Co#c Proč#s_#tag.pdf",
	}
	for _, file := range files {
		msg, ok := Parse(file)
		require.True(t, ok, "file %q", file)
		assert.Equal(t, file, msg.String())
	}
}
