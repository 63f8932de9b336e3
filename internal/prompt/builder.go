// Package prompt renders a FormState into the instruction prompt sent to the model.
package prompt

import (
	"strings"

	"github.com/remastershadhi/api/internal/model"
)

// Sections are the labeled song sections every generated song must contain, in order.
var Sections = []string{"INTRO", "VERSE 1", "CHORUS", "VERSE 2", "BRIDGE", "OUTRO"}

// Labels of the optional detail lines.
const (
	LabelGenre       = "Genre Preference: "
	LabelMood        = "Mood/Tone: "
	LabelAudience    = "Target Audience: "
	LabelRhyme       = "Overall Rhyme Scheme Preference (Use different schemes per section while aligning to this overall feel): "
	LabelArtistStyle = "Artist Style/Inspiration: "
	LabelNotes       = "Specific Instructions/Notes: "

	OptionalDetailsHeader = "--- Optional Details ---"
)

const preamble = "You are a professional lyricist. Write a complete song based on the following instructions."

const noCommentary = "The final output must be a single block of text with no introductory or concluding commentary, just the formatted lyrics."

// Build renders form into a prompt. It is pure: equal forms give byte-identical output.
func Build(form model.FormState) string {
	var sb strings.Builder

	sb.WriteString(preamble)
	sb.WriteString("\n\n")

	sb.WriteString("Target Language: " + form.Language + "\n")
	sb.WriteString("Main Theme/Story/Emotion: \"" + form.Theme + "\"\n\n")

	sb.WriteString("The output MUST contain the following sections, clearly labeled with their names: ")
	sb.WriteString(listWithAnd(Sections))
	sb.WriteString(".\n\n")

	sb.WriteString("Crucial Instruction: Use different, suitable rhyme schemes or lyrical styles for each of the required sections (")
	sb.WriteString(strings.Join(Sections, ", "))
	sb.WriteString(") to enhance musicality, while respecting the overall preferred rhyme scheme if specified.\n\n")

	sb.WriteString(noCommentary)
	sb.WriteString("\n\n")

	sb.WriteString(OptionalDetailsHeader + "\n")
	details := []struct {
		label, value string
	}{
		{LabelGenre, form.Genre},
		{LabelMood, form.Mood},
		{LabelAudience, form.Audience},
		{LabelRhyme, form.Rhyme},
		{LabelArtistStyle, form.ArtistStyle},
		{LabelNotes, form.AdditionalNotes},
	}
	for _, d := range details {
		if d.value == "" {
			continue
		}
		sb.WriteString(d.label + d.value + "\n")
	}

	return sb.String()
}

// listWithAnd joins items as "a, b, and c".
func listWithAnd(items []string) string {
	if len(items) < 2 {
		return strings.Join(items, "")
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}
