package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/remastershadhi/api/internal/client"
	"github.com/remastershadhi/api/internal/config"
	"github.com/remastershadhi/api/internal/ingest"
	"github.com/remastershadhi/api/internal/model"
	"github.com/remastershadhi/api/internal/session"
)

// fieldFlags maps command line flags to form fields.
var fieldFlags = []struct {
	flag  string
	field string
	usage string
}{
	{"theme", model.FieldTheme, "main theme, story or emotion"},
	{"language", model.FieldLanguage, "target language (see 'lyricist options')"},
	{"genre", model.FieldGenre, "genre preference"},
	{"mood", model.FieldMood, "mood or tone"},
	{"audience", model.FieldAudience, "target audience"},
	{"rhyme", model.FieldRhyme, "overall rhyme scheme preference"},
	{"artist-style", model.FieldArtistStyle, "artist style or inspiration"},
	{"notes", model.FieldAdditionalNotes, "additional notes or instructions"},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate lyrics for one theme",
	Long: `Generate builds the lyric prompt from the given fields and prints the song.

An inspiration file can seed the theme: an image is described by the model,
a text file (.txt, .md, .csv, ...) is used as the theme as is. Any other file
is attached without changing the theme.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("file", "", "inspiration file (image or text)")
	generateCmd.Flags().String("out", "", "directory to export the lyrics to")
	generateCmd.Flags().Bool("copy", false, "copy the lyrics to the clipboard")
	for _, f := range fieldFlags {
		generateCmd.Flags().String(f.flag, "", f.usage)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	closeLog := setupLogging(cfg.Client.LogFile)
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	opts := []session.Option{
		session.WithRevealer(&printRevealer{w: stdout}),
		session.WithClipboard(newTerminalClipboard(os.Stdout)),
	}
	outDir, _ := cmd.Flags().GetString("out")
	downloader := &fileDownloader{dir: outDir}
	if outDir != "" {
		opts = append(opts, session.WithDownloader(downloader))
	}

	gw := client.NewGatewayClient(&cfg.Client)
	log.Printf("Session started, endpoint %s", gw.Endpoint())
	sess := session.New(gw, opts...)

	for _, f := range fieldFlags {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		value, _ := cmd.Flags().GetString(f.flag)
		if err := sess.SetField(f.field, value); err != nil {
			return err
		}
	}

	if path, _ := cmd.Flags().GetString("file"); path != "" {
		if err := attach(ctx, sess, path, stderr); err != nil {
			return err
		}
	}

	if err := sess.Submit(ctx); err != nil {
		var vErr *session.ValidationError
		if errors.As(err, &vErr) {
			return vErr
		}
		log.Printf("Lyrics generation failed: %v", err)
		printMessage(stderr, sess)
		return errors.New("no lyrics generated")
	}
	log.Printf("Lyrics generated (%d bytes)", len(sess.Lyrics()))

	if copyLyrics, _ := cmd.Flags().GetBool("copy"); copyLyrics {
		sess.Copy(ctx)
		printMessage(stderr, sess)
	}

	if outDir != "" {
		sess.Export()
		printMessage(stderr, sess)
		if downloader.saved != "" {
			fmt.Fprintf(stderr, "Saved to %s\n", downloader.saved)
		}
	}

	return nil
}

// attach loads the inspiration file. A failed image description is reported
// but does not stop the run; the theme stays as it was.
func attach(ctx context.Context, sess *session.Session, path string, w io.Writer) error {
	f, err := ingest.Open(path)
	if err != nil {
		return err
	}
	log.Printf("Attaching %s (%s, %s)", f.Name, f.MIMEType, f.Category())

	if err := sess.AttachFile(ctx, f); err != nil {
		var gwErr *client.GatewayError
		var encErr *client.EncodingError
		if !errors.As(err, &gwErr) && !errors.As(err, &encErr) {
			return err
		}
		log.Printf("Image analysis failed: %v", err)
		printMessage(w, sess)
		sess.DismissMessage()
		return nil
	}

	if f.Category() == ingest.CategoryImage {
		fmt.Fprintf(w, "Theme from image: %s\n", sess.Form().Theme)
	}
	return nil
}

func printMessage(w io.Writer, sess *session.Session) {
	if msg := sess.View().Message; msg != nil {
		fmt.Fprintf(w, "%s %s\n", msg.Title, msg.Content)
	}
}
