package fontcss

import (
	"os"
)

// readText reads a whole file as text
func readText(path string) (string, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// writeText overwrites path, keeping the existing file mode when there is one.
// New files get 0644.
func writeText(path, content string) error {
	var mode os.FileMode = 0o644
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode() & 0o777
		if mode == 0 {
			mode = 0o644
		}
	}
	return os.WriteFile(path, []byte(content), mode)
}

// ReadStylesheet reads the stylesheet text
func ReadStylesheet(path string) (string, error) {
	return readText(path)
}
