package cli

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// SelectFileWithFzf launches fzf with a list of grayscale slice files
// found under startDir and returns the full path of the selected file,
// or an error if selection failed or fzf is unavailable. Grounded on
// the teacher's SelectFileWithFzf, trimmed of the kitty/sixel/iTerm
// image preview chain — morphcli's inputs are scalar fields, not
// photographs, so a thumbnail renderer buys nothing.
//
// This shells out to `find` piped into `fzf`; both must be on PATH.
// startDir may be "." or any directory path.
func SelectFileWithFzf(startDir string) (string, error) {
	quotedDir := strconv.Quote(startDir)
	cmdStr := fmt.Sprintf(
		"find %s -type f \\( -iname '*.png' -o -iname '*.pgm' -o -iname '*.raw' \\) | fzf --height 100%% --border --prompt='Files> '",
		quotedDir,
	)
	cmd := exec.Command("bash", "-lc", cmdStr)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("error running fzf for files: %w", err)
	}

	selection := strings.TrimSpace(out.String())
	if selection == "" {
		return "", fmt.Errorf("no file selected")
	}
	return selection, nil
}
