// Package output creates terminal outputs with a consistent color profile and
// renders the status lines printed by the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/pacforge/internal/ui/style"
)

// ColorProfile returns the color profile of the terminal.
// NO_COLOR forces plain output.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output writing to w, or to stderr if w is nil.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Success writes a green check followed by msg.
func Success(out *termenv.Output, msg string) error {
	return line(out, style.Check, style.Green, msg)
}

// Failure writes a red cross followed by msg.
func Failure(out *termenv.Output, msg string) error {
	return line(out, style.Cross, style.Red, msg)
}

// Item writes a neutral bullet followed by msg.
func Item(out *termenv.Output, msg string) error {
	return line(out, style.Dot, style.Slate, msg)
}

func line(out *termenv.Output, icon string, color style.Color, msg string) error {
	styled := out.String(icon + " " + msg).Foreground(termenv.RGBColor(string(color)))
	_, err := out.WriteString(styled.String() + "\n")
	return err
}
