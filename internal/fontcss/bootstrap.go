package fontcss

import (
	"errors"
	"fmt"
	"strings"
)

// MixinDefinition is written to (or prepended to) the mixins file
const MixinDefinition = `@mixin font-face($name, $file, $weight: 400, $style: normal) {@font-face {font-family: "#{$name}";src: local("#{$file}"), url("../fonts/#{$file}.woff2") format("woff2"),url("../fonts/#{$file}.woff") format("woff");font-weight: $weight;font-style: $style;font-display: swap;}}` + "\n"

// MixinMarker identifies a mixins file that already defines the font-face mixin
const MixinMarker = "@mixin font-face"

// ImportLine links the stylesheet to the mixins file
const ImportLine = "@import 'mixins';"

var (
	// ErrMixinsNotDefined is reported when no mixins file path is configured
	ErrMixinsNotDefined = errors.New("mixins file not defined")
	// ErrStylesheetNotDefined is reported when no stylesheet path is configured
	ErrStylesheetNotDefined = errors.New("font stylesheet not defined")
	// ErrCreateFailed wraps write failures while creating a missing asset
	ErrCreateFailed = errors.New("create failed")
)

// BootstrapResult records what the bootstrapper changed on disk
type BootstrapResult struct {
	MixinsSkipped     bool // No mixins path configured
	MixinsCreated     bool
	MixinsUpdated     bool // Definition prepended
	StylesheetCreated bool
	StylesheetUpdated bool // Import prepended
}

// Bootstrap makes sure the mixins file and the stylesheet exist and are linked.
//
// The mixins file is optional: a missing path is reported on the console,
// recorded in the result and the stylesheet step still runs. Every other
// failure is returned, and a failed mixins write stops before the stylesheet.
func Bootstrap(mixinsPath, stylesheetPath string, con *Console) (BootstrapResult, error) {
	var result BootstrapResult

	created, updated, err := EnsureMixins(mixinsPath, con)
	switch {
	case errors.Is(err, ErrMixinsNotDefined):
		result.MixinsSkipped = true
	case err != nil:
		return result, err
	}
	result.MixinsCreated, result.MixinsUpdated = created, updated

	created, updated, err = EnsureStylesheet(stylesheetPath, con)
	result.StylesheetCreated, result.StylesheetUpdated = created, updated
	return result, err
}

// EnsureMixins creates the mixins file or prepends the mixin definition when
// the file does not define it yet
func EnsureMixins(path string, con *Console) (created, updated bool, err error) {
	if path == "" {
		con.ConfigError("styles.mixins")
		return false, false, ErrMixinsNotDefined
	}

	data, readErr := readText(path)
	if readErr != nil {
		// Unreadable counts as absent
		if err := writeText(path, MixinDefinition); err != nil {
			return false, false, fmt.Errorf("%w: %s: %w", ErrCreateFailed, path, err)
		}
		con.FileCreated(path)
		return true, false, nil
	}

	if strings.Contains(data, MixinMarker) {
		con.Verbosef("%s already defines the font-face mixin", path)
		return false, false, nil
	}

	if err := writeText(path, MixinDefinition+data); err != nil {
		return false, false, fmt.Errorf("update %s: %w", path, err)
	}
	con.Verbosef("Prepended font-face mixin to %s", path)
	return false, true, nil
}

// EnsureStylesheet creates the stylesheet or prepends the mixins import.
//
// Only a leading import counts: an import found later in the file is treated
// as missing and the line is prepended again.
func EnsureStylesheet(path string, con *Console) (created, updated bool, err error) {
	if path == "" {
		con.ConfigError("styles.fonts")
		return false, false, ErrStylesheetNotDefined
	}

	data, readErr := readText(path)
	if readErr != nil {
		if err := writeText(path, ImportLine); err != nil {
			return false, false, fmt.Errorf("%w: %s: %w", ErrCreateFailed, path, err)
		}
		con.FileCreated(path)
		return true, false, nil
	}

	if strings.HasPrefix(data, ImportLine) {
		return false, false, nil
	}

	if err := writeText(path, ImportLine+"\n"+data); err != nil {
		return false, false, fmt.Errorf("update %s: %w", path, err)
	}
	con.Verbosef("Prepended %s to %s", ImportLine, path)
	return false, true, nil
}
