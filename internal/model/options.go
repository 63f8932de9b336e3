package model

// Option is one selectable value of an enumerated form field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionTable names an enumerated form field.
type OptionTable string

const (
	TableLanguage OptionTable = "language"
	TableGenre    OptionTable = "genre"
	TableMood     OptionTable = "mood"
	TableAudience OptionTable = "audience"
	TableRhyme    OptionTable = "rhyme"
)

const anyOption = "(Any / Default)"

// Languages
var LanguageOptions = []Option{
	{Value: "English", Label: "English"},
	{Value: "Hindi", Label: "Hindi"},
	{Value: "Tamil (தமிழ்)", Label: "Tamil (தமிழ்)"},
	{Value: "Malayalam (മലയാളം)", Label: "Malayalam (മലയാളം)"},
}

// Genres
var GenreOptions = []Option{
	{Value: "", Label: anyOption},
	{Value: "Pop", Label: "Pop"},
	{Value: "Rock", Label: "Rock"},
	{Value: "Hip-Hop/Rap", Label: "Hip-Hop/Rap"},
	{Value: "R&B", Label: "R&B"},
	{Value: "Acoustic Ballad", Label: "Acoustic Ballad"},
	{Value: "EDM/Dance", Label: "EDM/Dance"},
	{Value: "Ghazal/Qawwali", Label: "Ghazal/Qawwali (Indian Classical/Devotional)"},
	{Value: "Kuthu/Gaana", Label: "Kuthu/Gaana (South Indian Folk Dance)"},
}

// Moods
var MoodOptions = []Option{
	{Value: "", Label: anyOption},
	{Value: "Melancholic/Sad", Label: "Melancholic/Sad"},
	{Value: "Upbeat/Energetic", Label: "Upbeat/Energetic"},
	{Value: "Romantic/Lyrical", Label: "Romantic/Lyrical"},
	{Value: "Angry/Aggressive", Label: "Angry/Aggressive"},
	{Value: "Wistful/Nostalgic", Label: "Wistful/Nostalgic"},
	{Value: "Triumphant/Motivational", Label: "Triumphant/Motivational"},
}

// Audiences
var AudienceOptions = []Option{
	{Value: "", Label: anyOption},
	{Value: "Teens/Young Adult", Label: "Teens/Young Adult"},
	{Value: "General Audience", Label: "General Audience"},
	{Value: "Niche/Specific Theme", Label: "Niche/Specific Theme"},
	{Value: "Academic/Mature", Label: "Academic/Mature"},
}

// Rhyme schemes
var RhymeOptions = []Option{
	{Value: "", Label: anyOption},
	{Value: "AABB (Couplets)", Label: "AABB (Couplets - Simple)"},
	{Value: "ABAB (Alternating)", Label: "ABAB (Alternating)"},
	{Value: "Free Verse (No strict rhyme)", Label: "Free Verse (No strict rhyme)"},
	{Value: "Slant Rhyme/Subtle", Label: "Slant Rhyme/Subtle"},
}

// OptionTables lists every enumerated field in form order.
var OptionTables = []OptionTable{TableLanguage, TableGenre, TableMood, TableAudience, TableRhyme}

// Options returns the table for name, or nil if there is none.
func Options(name OptionTable) []Option {
	switch name {
	case TableLanguage:
		return LanguageOptions
	case TableGenre:
		return GenreOptions
	case TableMood:
		return MoodOptions
	case TableAudience:
		return AudienceOptions
	case TableRhyme:
		return RhymeOptions
	}
	return nil
}

// IsOption reports whether value is one of the values in the named table.
func IsOption(name OptionTable, value string) bool {
	for _, opt := range Options(name) {
		if opt.Value == value {
			return true
		}
	}
	return false
}
