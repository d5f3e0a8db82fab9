package cli

import (
	"bufio"
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/parabolicmorph/sdt/ndimage"
)

// PromptLine displays a prompt and reads a full line of input from the
// user, trimmed of surrounding whitespace.
func PromptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptLineWithFzf reads a full line from stdin, treating a bare "/"
// as a request to invoke fzf (SelectFileWithFzf) over the current
// directory instead. Falls back to a typed prompt if fzf is
// unavailable or the selection is cancelled.
func PromptLineWithFzf(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	input := strings.TrimSpace(line)
	if input != "/" {
		return input, nil
	}
	sel, selErr := SelectFileWithFzf(".")
	if selErr == nil && sel != "" {
		fmt.Printf(" [fzf] %s\n", sel)
		return sel, nil
	}
	return PromptLine(prompt)
}

// LoadSlice reads a grayscale PNG from disk and returns it as a 2-D
// float64 Image — the volume-slice input format morphcli's commands
// operate on.
func LoadSlice(path string) (*ndimage.Image[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ndimage.FromGray(img, 1, 1), nil
}

// SaveSlice renders a 2-D Image to a grayscale PNG on disk.
func SaveSlice(path string, img *ndimage.Image[float64]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, ndimage.ToGray(img))
}

// GetImageInfo returns a short human-readable summary of a slice's
// shape and value range.
func GetImageInfo(img *ndimage.Image[float64]) string {
	min, max := img.Data[0], img.Data[0]
	for _, v := range img.Data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return fmt.Sprintf("shape=%v spacing=%v range=[%.4f, %.4f]", img.Size, img.Spacing, min, max)
}
