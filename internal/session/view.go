package session

import (
	"github.com/remastershadhi/api/internal/ingest"
	"github.com/remastershadhi/api/internal/model"
)

// View is a snapshot of everything a renderer needs.
type View struct {
	Form          model.FormState
	FileName      string
	Preview       *ingest.Preview
	Lyrics        string
	Message       *model.Message
	Loading       bool
	FileLoading   bool
	SubmitLabel   string
	SubmitEnabled bool
	ThemeDisabled bool
	// Status is shown under the submit button while lyrics are generated.
	Status string
}

// View returns the current snapshot.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Form:          s.form,
		Lyrics:        s.lyrics,
		Loading:       s.loading,
		FileLoading:   s.fileLoading,
		SubmitLabel:   LabelGenerate,
		SubmitEnabled: !s.loading && !s.fileLoading,
		ThemeDisabled: s.fileLoading,
	}
	if s.file != nil {
		v.FileName = s.file.Name
	}
	if s.preview != nil {
		p := *s.preview
		v.Preview = &p
	}
	if s.message != nil {
		m := *s.message
		v.Message = &m
	}

	switch {
	case s.fileLoading:
		v.SubmitLabel = LabelAnalyzing
	case s.loading:
		v.SubmitLabel = LabelGenerating
		v.Status = StatusGenerating
	}
	return v
}
