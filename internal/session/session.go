// Package session holds the state of one lyric-writing session: the form, the
// inspiration file, generated lyrics and the visible message. Long operations
// run outside the lock and re-enter state only through it.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/remastershadhi/api/internal/ingest"
	"github.com/remastershadhi/api/internal/model"
	"github.com/remastershadhi/api/internal/prompt"
)

// ErrBusy is returned when an operation of the same kind is already in flight.
var ErrBusy = errors.New("session is busy")

// Submit button labels and the status shown while generating.
const (
	LabelGenerate    = "Generate Lyrics"
	LabelGenerating  = "Generating..."
	LabelAnalyzing   = "Analyzing..."
	StatusGenerating = "Harmonizing the verses..."
)

// Gateway produces model output. It is satisfied by *client.GatewayClient.
type Gateway interface {
	RequestLyrics(ctx context.Context, prompt string) (string, error)
	RequestImageDescription(ctx context.Context, f *ingest.File) (string, error)
}

// Clipboard receives copied lyrics.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Downloader hands an export artifact to the user.
type Downloader interface {
	Download(filename, contentType string, data []byte) error
}

// Revealer brings the output region into view when new lyrics arrive.
type Revealer interface {
	Reveal(lyrics string)
}

// ValidationError reports a form field that blocks submission.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	if e.Rule == "required" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s has an unsupported value", e.Field)
}

// Option configures a Session.
type Option func(*Session)

func WithClipboard(c Clipboard) Option {
	return func(s *Session) { s.clipboard = c }
}

func WithDownloader(d Downloader) Option {
	return func(s *Session) { s.downloader = d }
}

func WithRevealer(r Revealer) Option {
	return func(s *Session) { s.revealer = r }
}

// Session is the state of one session. All methods are safe for concurrent use.
type Session struct {
	gateway    Gateway
	clipboard  Clipboard
	downloader Downloader
	revealer   Revealer
	validate   *validator.Validate

	mu          sync.Mutex
	form        model.FormState
	file        *ingest.File
	preview     *ingest.Preview
	lyrics      string
	message     *model.Message
	loading     bool
	fileLoading bool
	// fileGen identifies the current file; async results for older files are dropped.
	fileGen uint64
}

// New creates a session with the default form.
func New(gw Gateway, opts ...Option) *Session {
	s := &Session{
		gateway:  gw,
		validate: model.NewValidator(),
		form:     model.DefaultFormState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetField overwrites one form field. The theme cannot be edited while a file
// is being analyzed.
func (s *Session) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == model.FieldTheme && s.fileLoading {
		return ErrBusy
	}
	return s.form.Set(name, value)
}

// Form returns a copy of the current form.
func (s *Session) Form() model.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// AttachFile replaces the inspiration file and returns once its category's
// work is done. Images get a preview and a description concurrently; the
// description becomes the theme. Text files become the theme directly.
func (s *Session) AttachFile(ctx context.Context, f *ingest.File) error {
	if f == nil {
		s.RemoveFile()
		return nil
	}

	category := f.Category()

	s.mu.Lock()
	if category == ingest.CategoryImage && s.fileLoading {
		s.mu.Unlock()
		return ErrBusy
	}
	gen := s.replaceFile(f)
	switch category {
	case ingest.CategoryImage:
		s.fileLoading = true
	case ingest.CategoryGeneric:
		p := ingest.GenericPreview()
		s.preview = &p
	}
	s.mu.Unlock()

	switch category {
	case ingest.CategoryImage:
		return s.analyzeImage(ctx, f, gen)
	case ingest.CategoryText:
		return s.loadText(ctx, f, gen)
	}
	return nil
}

// RemoveFile clears the inspiration file, its preview and any lyrics.
func (s *Session) RemoveFile() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceFile(nil)
}

// replaceFile must be called with mu held.
func (s *Session) replaceFile(f *ingest.File) uint64 {
	s.fileGen++
	s.file = f
	s.preview = nil
	s.lyrics = ""
	return s.fileGen
}

// analyzeImage decodes the preview and requests the description concurrently.
// Each result is published as soon as it arrives, so the preview shows while
// the description is still pending. The loading flag drops once both are done.
func (s *Session) analyzeImage(ctx context.Context, f *ingest.File, gen uint64) error {
	var (
		describeErr error
		g           errgroup.Group
	)

	g.Go(func() error {
		preview, err := ingest.ImagePreview(ctx, f)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.fileGen {
			return nil
		}
		if err != nil {
			log.Printf("Preview of %s failed: %v", f.Name, err)
			return nil
		}
		s.preview = &preview
		return nil
	})
	g.Go(func() error {
		description, err := s.gateway.RequestImageDescription(ctx, f)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.fileGen {
			log.Printf("Discarding description of superseded file %s", f.Name)
			return nil
		}
		if err != nil {
			describeErr = err
			s.message = &model.Message{Title: model.TitleImageAnalysisError, Content: err.Error()}
			return nil
		}
		s.form.Theme = description
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	// The in-flight description owns the flag even when superseded.
	s.fileLoading = false
	return describeErr
}

func (s *Session) loadText(ctx context.Context, f *ingest.File, gen uint64) error {
	preview, err := ingest.TextPreview(ctx, f)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.fileGen {
		return nil
	}
	if err != nil {
		return err
	}
	s.preview = &preview
	s.form.Theme = preview.Data
	return nil
}

// Submit validates the form and generates lyrics. A gateway failure becomes
// the visible message; it is also returned. Lyrics that arrive after the
// inspiration file changed are dropped.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.loading || s.fileLoading {
		s.mu.Unlock()
		return ErrBusy
	}
	if err := s.validateForm(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.loading = true
	s.lyrics = ""
	s.message = nil
	text := prompt.Build(s.form)
	gen := s.fileGen
	s.mu.Unlock()

	lyrics, err := s.gateway.RequestLyrics(ctx, text)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.message = &model.Message{Title: model.TitleAPIError, Content: err.Error()}
		s.mu.Unlock()
		return err
	}
	if gen != s.fileGen {
		s.mu.Unlock()
		log.Printf("Discarding lyrics generated for a superseded inspiration file")
		return nil
	}
	s.lyrics = lyrics
	s.mu.Unlock()

	if s.revealer != nil && lyrics != "" {
		s.revealer.Reveal(lyrics)
	}
	return nil
}

// validateForm must be called with mu held.
func (s *Session) validateForm() error {
	err := s.validate.Struct(&s.form)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		e := validationErrors[0]
		return &ValidationError{Field: lowerFirst(e.Field()), Rule: e.Tag()}
	}
	return err
}

// Lyrics returns the current lyrics.
func (s *Session) Lyrics() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lyrics
}

// Copy writes the lyrics to the clipboard. Empty lyrics are a no-op.
func (s *Session) Copy(ctx context.Context) {
	s.mu.Lock()
	lyrics := s.lyrics
	s.mu.Unlock()

	if lyrics == "" {
		return
	}

	msg := &model.Message{Title: model.TitleCopied, Content: model.ContentCopied}
	if s.clipboard == nil {
		msg = &model.Message{Title: model.TitleCopyError, Content: model.ContentCopyError}
	} else if err := s.clipboard.WriteText(ctx, lyrics); err != nil {
		log.Printf("Copy failed: %v", err)
		msg = &model.Message{Title: model.TitleCopyError, Content: model.ContentCopyError}
	}

	s.mu.Lock()
	s.message = msg
	s.mu.Unlock()
}

// Export hands the lyrics to the downloader as a text file. Empty lyrics are a
// no-op. The success message is shown whatever the downloader reports.
func (s *Session) Export() {
	s.mu.Lock()
	lyrics := s.lyrics
	s.mu.Unlock()

	if lyrics == "" {
		return
	}

	if s.downloader != nil {
		if err := s.downloader.Download(model.ExportFilename, model.ExportContentType, []byte(lyrics)); err != nil {
			log.Printf("Export failed: %v", err)
		}
	}

	s.mu.Lock()
	s.message = &model.Message{Title: model.TitleExported, Content: model.ContentExported}
	s.mu.Unlock()
}

// DismissMessage hides the visible message.
func (s *Session) DismissMessage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = nil
}

// HandleKey reacts to a key press. Escape dismisses a visible message and
// reports true; anything else is ignored.
func (s *Session) HandleKey(key string) bool {
	if key != "Escape" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.message == nil {
		return false
	}
	s.message = nil
	return true
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
