package fontcss

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fc "github.com/yacobolo/fontcss/internal/fontcss"
)

func TestCheckClean(t *testing.T) {
	config := testProject(t, "Roboto/Roboto.ttf", "Roboto/RobotoItalic.ttf")
	_, err := Sync(context.Background(), config, nil)
	require.NoError(t, err)

	result, err := Check(context.Background(), config, nil)
	require.NoError(t, err)

	assert.Empty(t, result.Issues)
	assert.Equal(t, 2, result.Declarations)
	assert.False(t, result.Failed(true))
}

func TestCheckIssues(t *testing.T) {
	config := testProject(t, "Roboto/Roboto.ttf", "Roboto/RobotoItalic.ttf")
	stylesheet := "// fonts\n" +
		robotoRegular + "\n" +
		interBold + "\n" +
		robotoRegular + "\n"
	require.NoError(t, os.WriteFile(config.StylesheetFile, []byte(stylesheet), 0644))

	result, err := Check(context.Background(), config, nil)
	require.NoError(t, err)

	require.Len(t, result.Issues, 4)

	// Whole-file issues sort first
	undeclared := result.Issues[0]
	assert.Equal(t, fc.SeverityError, undeclared.Severity)
	assert.Zero(t, undeclared.Pos.Line)
	require.NotNil(t, undeclared.Replacement)
	assert.Equal(t, robotoItalic, undeclared.Replacement.NewText)

	missingImport := result.Issues[1]
	assert.Equal(t, fc.SeverityError, missingImport.Severity)
	assert.Equal(t, 1, missingImport.Pos.Line)
	assert.Equal(t, []string{"// fonts"}, missingImport.SourceLines)

	stale := result.Issues[2]
	assert.Equal(t, fc.SeverityWarning, stale.Severity)
	assert.Equal(t, 3, stale.Pos.Line)
	assert.Contains(t, stale.Text, "Inter/Inter-Bold")

	duplicate := result.Issues[3]
	assert.Equal(t, fc.SeverityWarning, duplicate.Severity)
	assert.Equal(t, 4, duplicate.Pos.Line)
	assert.Contains(t, duplicate.Text, "line 2")

	assert.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, 2, result.WarningCount)
	assert.True(t, result.Failed(false))
}

func TestCheckWarningsOnlyStrict(t *testing.T) {
	config := testProject(t, "Roboto/Roboto.ttf")
	stylesheet := fc.ImportLine + "\n" + robotoRegular + "\n" + interBold
	require.NoError(t, os.WriteFile(config.StylesheetFile, []byte(stylesheet), 0644))

	result, err := Check(context.Background(), config, nil)
	require.NoError(t, err)

	assert.Zero(t, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)
	assert.False(t, result.Failed(false))
	assert.True(t, result.Failed(true))
}

func TestCheckIgnoredFamilyIsNotStale(t *testing.T) {
	config := testProject(t, "Roboto/Roboto.ttf", "Inter/Inter-Bold.woff2")
	require.NoError(t, os.WriteFile(filepath.Join(config.FontsDir, fc.DefaultIgnoreFile), []byte("Inter/\n"), 0644))
	stylesheet := fc.ImportLine + "\n" + robotoRegular + "\n" + interBold
	require.NoError(t, os.WriteFile(config.StylesheetFile, []byte(stylesheet), 0644))

	result, err := Check(context.Background(), config, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
}

func TestCheckIgnoredFileIsNotStale(t *testing.T) {
	config := testProject(t, "Roboto/Roboto.ttf", "Roboto/RobotoItalic.ttf")
	require.NoError(t, os.WriteFile(filepath.Join(config.FontsDir, fc.DefaultIgnoreFile), []byte("*Italic.ttf\n"), 0644))
	stylesheet := fc.ImportLine + "\n" + robotoRegular + "\n" + robotoItalic
	require.NoError(t, os.WriteFile(config.StylesheetFile, []byte(stylesheet), 0644))

	result, err := Check(context.Background(), config, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.FontsFound)
	assert.Empty(t, result.Issues)
	assert.False(t, result.Failed(true))
}

func TestCheckMaxIssues(t *testing.T) {
	config := testProject(t, "Roboto/Roboto.ttf", "Roboto/RobotoItalic.ttf", "Inter/Inter-Bold.woff2")
	require.NoError(t, os.WriteFile(config.StylesheetFile, []byte(""), 0644))
	config.MaxIssues = 2

	result, err := Check(context.Background(), config, nil)
	require.NoError(t, err)

	assert.Len(t, result.Issues, 2)
	assert.Equal(t, 2, result.TruncatedCount)
}

func TestCheckErrors(t *testing.T) {
	config := testProject(t)

	_, err := Check(context.Background(), config, nil)
	require.Error(t, err, "stylesheet does not exist")

	config.StylesheetFile = ""
	_, err = Check(context.Background(), config, nil)
	require.ErrorIs(t, err, fc.ErrStylesheetNotDefined)
}
