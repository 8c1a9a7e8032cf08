package fontcss

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const bannerRule = "----------------------------------------------------------------------------------"

// Console prints human-readable diagnostics for a run
type Console struct {
	out       io.Writer
	err       io.Writer
	useColors bool
	verbose   bool
	quiet     bool
}

// NewConsole creates a console writing info to out and errors to errW
func NewConsole(out, errW io.Writer, config Config) *Console {
	return &Console{
		out:       out,
		err:       errW,
		useColors: shouldUseColors(config),
		verbose:   config.Verbose,
		quiet:     config.Quiet,
	}
}

// DiscardConsole swallows everything (library callers that want silence)
func DiscardConsole() *Console {
	return &Console{out: io.Discard, err: io.Discard}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config Config) bool {
	if config.UseColors {
		return true
	}

	// GitHub Actions and friends
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled
func (c *Console) UseColors() bool {
	return c.useColors
}

// Infof prints a regular progress message
func (c *Console) Infof(format string, args ...any) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Verbosef prints only when verbose logging is enabled
func (c *Console) Verbosef(format string, args ...any) {
	if !c.verbose || c.quiet {
		return
	}
	fmt.Fprintln(c.out, RenderStyle(StyleGray, fmt.Sprintf(format, args...), c.useColors))
}

// Warnf prints a warning to the error stream
func (c *Console) Warnf(format string, args ...any) {
	if c.quiet {
		return
	}
	fmt.Fprintln(c.err, RenderStyle(StyleYellow, "Warning: ", c.useColors)+fmt.Sprintf(format, args...))
}

// Errorf prints an error to the error stream, even in quiet mode
func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintln(c.err, RenderStyle(StyleRed, "Error: ", c.useColors)+fmt.Sprintf(format, args...))
}

// FileCreated prints the framed notice shown when a missing asset is created
func (c *Console) FileCreated(path string) {
	if c.quiet {
		return
	}
	msg := fmt.Sprintf("• The file '%s' was successfully created!", path)
	fmt.Fprintln(c.out, strings.Join([]string{
		bannerRule,
		RenderStyle(StyleGreen, msg, c.useColors),
		bannerRule,
	}, "\n"))
}

// ConfigError reports a missing path setting
func (c *Console) ConfigError(setting string) {
	c.Errorf("Font style file not defined!\n"+
		"  Set %q in .fontcss.yaml (run `fontcss init` to create one) or pass it as a flag.", setting)
}
