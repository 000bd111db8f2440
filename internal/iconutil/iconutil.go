package iconutil

import (
	"fmt"
	"os/exec"
)

// DefaultTool is the macOS command that converts an .iconset directory.
const DefaultTool = "iconutil"

// Pack converts iconsetDir into an .icns archive at out by running tool
// (normally iconutil). Returns an error if the tool is not on PATH or exits
// non-zero; the tool's output is included in the error.
func Pack(tool, iconsetDir, out string) error {
	if tool == "" {
		tool = DefaultTool
	}
	if _, err := exec.LookPath(tool); err != nil {
		return fmt.Errorf("%s not found on PATH (required to build %s): %w", tool, out, err)
	}
	cmd := exec.Command(tool, "-c", "icns", iconsetDir, "-o", out)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s convert: %w\n%s", tool, err, output)
	}
	return nil
}
