package model

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFormState_IsValid(t *testing.T) {
	v := NewValidator()
	form := DefaultFormState()

	assert.Equal(t, "English", form.Language)
	assert.Equal(t, DefaultTheme, form.Theme)
	assert.NoError(t, v.Struct(&form))
}

func TestFormState_Set(t *testing.T) {
	var form FormState
	fields := map[string]string{
		FieldTheme:           "rain on a tin roof",
		FieldLanguage:        "Hindi",
		FieldGenre:           "Rock",
		FieldMood:            "Wistful/Nostalgic",
		FieldAudience:        "General Audience",
		FieldRhyme:           "ABAB (Alternating)",
		FieldArtistStyle:     "Gulzar",
		FieldAdditionalNotes: "keep it short",
	}
	for name, value := range fields {
		require.NoError(t, form.Set(name, value))
	}

	assert.Equal(t, FormState{
		Theme:           "rain on a tin roof",
		Language:        "Hindi",
		Genre:           "Rock",
		Mood:            "Wistful/Nostalgic",
		Audience:        "General Audience",
		Rhyme:           "ABAB (Alternating)",
		ArtistStyle:     "Gulzar",
		AdditionalNotes: "keep it short",
	}, form)

	assert.Error(t, form.Set("tempo", "fast"))
}

func TestFormState_Validation(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		form  FormState
		field string
	}{
		{"missing theme", FormState{Language: "English"}, "Theme"},
		{"missing language", FormState{Theme: "x"}, "Language"},
		{"unknown language", FormState{Theme: "x", Language: "Klingon"}, "Language"},
		{"unknown genre", FormState{Theme: "x", Language: "English", Genre: "Polka"}, "Genre"},
		{"unknown mood", FormState{Theme: "x", Language: "English", Mood: "Sleepy"}, "Mood"},
		{"unknown audience", FormState{Theme: "x", Language: "English", Audience: "Cats"}, "Audience"},
		{"unknown rhyme", FormState{Theme: "x", Language: "English", Rhyme: "ABCD"}, "Rhyme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(&tt.form)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}

func TestFormState_FreeTextFieldsUnrestricted(t *testing.T) {
	v := NewValidator()
	form := FormState{
		Theme:           "x",
		Language:        "Tamil (தமிழ்)",
		ArtistStyle:     "anything at all",
		AdditionalNotes: "8 lines max",
	}
	assert.NoError(t, v.Struct(&form))
}

func TestIsOption(t *testing.T) {
	assert.True(t, IsOption(TableGenre, ""))
	assert.True(t, IsOption(TableGenre, "R&B"))
	assert.False(t, IsOption(TableLanguage, ""))
	assert.False(t, IsOption("tempo", "fast"))
	assert.Len(t, OptionTables, 5)
}
