package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultTheme seeds a fresh session so the form is submittable immediately.
const DefaultTheme = "A vibrant celebration of a traditional Indian festival with modern beats"

// Form field names, as used by SetField.
const (
	FieldTheme           = "theme"
	FieldLanguage        = "language"
	FieldGenre           = "genre"
	FieldMood            = "mood"
	FieldAudience        = "audience"
	FieldRhyme           = "rhyme"
	FieldArtistStyle     = "artistStyle"
	FieldAdditionalNotes = "additionalNotes"
)

// FormState is the structured user input describing the desired lyrics.
type FormState struct {
	Theme           string `json:"theme" validate:"required"`
	Language        string `json:"language" validate:"required,option=language"`
	Genre           string `json:"genre" validate:"omitempty,option=genre"`
	Mood            string `json:"mood" validate:"omitempty,option=mood"`
	Audience        string `json:"audience" validate:"omitempty,option=audience"`
	Rhyme           string `json:"rhyme" validate:"omitempty,option=rhyme"`
	ArtistStyle     string `json:"artistStyle"`
	AdditionalNotes string `json:"additionalNotes"`
}

// DefaultFormState returns the initial form of a new session.
func DefaultFormState() FormState {
	return FormState{
		Theme:    DefaultTheme,
		Language: LanguageOptions[0].Value,
	}
}

// Set overwrites the field called name with value.
func (f *FormState) Set(name, value string) error {
	switch name {
	case FieldTheme:
		f.Theme = value
	case FieldLanguage:
		f.Language = value
	case FieldGenre:
		f.Genre = value
	case FieldMood:
		f.Mood = value
	case FieldAudience:
		f.Audience = value
	case FieldRhyme:
		f.Rhyme = value
	case FieldArtistStyle:
		f.ArtistStyle = value
	case FieldAdditionalNotes:
		f.AdditionalNotes = value
	default:
		return fmt.Errorf("unknown form field %q", name)
	}
	return nil
}

// NewValidator returns a validator with the "option=<table>" rule registered,
// which accepts only values present in the named option table.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("option", func(fl validator.FieldLevel) bool {
		return IsOption(OptionTable(fl.Param()), fl.Field().String())
	})
	return v
}
