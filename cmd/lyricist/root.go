package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var rootCmd = &cobra.Command{
	Use:   "lyricist",
	Short: "Write song lyrics with Gemini through the Remastershadhi proxy",
	Long: `Lyricist builds a songwriting prompt from a theme, a language and optional
style hints, optionally seeded by an image or text file, and asks the
Remastershadhi proxy for a complete song.

Available commands:
  generate - Generate lyrics for one theme
  options  - List the accepted language, genre, mood, audience and rhyme values`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("endpoint", "", "proxy endpoint (default http://localhost:8000/api/gemini-proxy)")
	rootCmd.PersistentFlags().String("log-file", "", "session log file (default .lyricist/session.log)")
	_ = viper.BindPFlag("client.endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("client.log_file", rootCmd.PersistentFlags().Lookup("log-file"))

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(optionsCmd)
}

// setupLogging sends the standard logger to a rotated file and returns a
// function that closes it. An empty path discards log output.
func setupLogging(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}

	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	logFile := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	log.SetOutput(logFile)
	return func() { _ = logFile.Close() }
}
