package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/parabolicmorph/sdt/internal/logging"
	"github.com/parabolicmorph/sdt/ndimage"
	"github.com/parabolicmorph/sdt/parabolic"
)

func usage() {
	fmt.Println("Commands available:")
	fmt.Println("  /  - apply a morphology operation to the loaded slice")
	fmt.Println("  o  - open another slice at runtime")
	fmt.Println("  s  - save current slice")
	fmt.Println("  u  - check for updates")
	fmt.Println("  h  - show this help message")
	fmt.Println("  q  - quit")
}

// command names offered under '/'.
var commandNames = []string{"open", "close", "sdt", "sharpen", "resize"}

// RunCLI drives the interactive REPL morphcli exposes: load a grayscale
// slice, run one of the separable parabolic operations against it, and
// save the result. Grounded on the teacher's RunCLI loop shape (single
// rune dispatch over a running image), with the command-argument
// machinery replaced by the small fixed parameter set morphology needs
// instead of stdimg's generic CommandSpec registry.
func RunCLI() {
	log := logging.NewConsole(zerolog.InfoLevel)

	var inputPath string
	if len(os.Args) >= 2 {
		inputPath = os.Args[1]
	}

	var cur *ndimage.Image[float64]
	if inputPath != "" {
		img, err := LoadSlice(inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read slice %s: %v\n", inputPath, err)
			os.Exit(1)
		}
		cur = img
		fmt.Println(GetImageInfo(cur))
	}

	fmt.Println("Parabolic Morphology CLI")
	usage()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		r, _, err := reader.ReadRune()
		if err != nil {
			fmt.Fprintf(os.Stderr, "read input error: %v\n", err)
			continue
		}

		switch r {
		case '/':
			if cur == nil {
				fmt.Println("No slice loaded. Press 'o' to open one first, or provide a path as the first argument.")
				continue
			}
			cur = applyCommand(cur, log)
			if cur != nil {
				fmt.Println(GetImageInfo(cur))
			}
			continue

		case 's':
			out, _ := PromptLine("Enter output filename: ")
			if out == "" {
				fmt.Println("no filename provided")
				continue
			}
			if err := SaveSlice(out, cur); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write slice: %v\n", err)
				continue
			}
			fmt.Printf("Saved to %s\n", out)

		case 'o':
			newPath, perr := PromptLineWithFzf("Enter path to slice to open (or '/' for fzf): ")
			if perr != nil || newPath == "" {
				fmt.Println("open cancelled")
				continue
			}
			img, err := LoadSlice(newPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to read slice %s: %v\n", newPath, err)
				continue
			}
			cur = img
			fmt.Printf("Opened %s\n", newPath)
			fmt.Println(GetImageInfo(cur))
			continue

		case 'u':
			if err := CheckForUpdates(); err != nil {
				fmt.Fprintf(os.Stderr, "update check error: %v\n", err)
			}
			continue

		case 'h':
			usage()
			continue

		case 'q':
			fmt.Println("Exiting...")
			return

		default:
			// ignore other keys
		}
	}
}

// applyCommand prompts for a command name and its sigma parameter,
// runs it against cur, and returns the result (or cur unchanged on
// cancellation/error).
func applyCommand(cur *ndimage.Image[float64], log *logging.Logger) *ndimage.Image[float64] {
	fmt.Println("Commands:")
	for i, name := range commandNames {
		fmt.Printf("  %d) %s\n", i+1, name)
	}
	selection, _ := PromptLine("Enter number or command name (leave empty to cancel): ")
	if selection == "" {
		fmt.Println("selection cancelled")
		return cur
	}

	name := resolveCommandName(selection)
	if name == "" {
		fmt.Printf("unknown command: %s\n", selection)
		return cur
	}

	if name == "resize" {
		return applyResize(cur)
	}

	sigmaStr, _ := PromptLine("sigma (scale, e.g. 2.0): ")
	sigma, err := strconv.ParseFloat(strings.TrimSpace(sigmaStr), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid sigma: %v\n", err)
		return cur
	}

	sigmas := make([]float64, cur.NumAxes())
	for i := range sigmas {
		sigmas[i] = sigma
	}
	spacing := parabolic.UnitSpacing(cur.NumAxes())
	workers := 0 // parabolic.Separable's default worker count

	switch name {
	case "open":
		out := cur.Clone()
		parabolic.OpenClose(out, cur, sigmas, spacing, parabolic.Open, parabolic.Auto, parabolic.Float64Extremes, workers)
		return out

	case "close":
		out := cur.Clone()
		parabolic.OpenClose(out, cur, sigmas, spacing, parabolic.Close, parabolic.Auto, parabolic.Float64Extremes, workers)
		return out

	case "sdt":
		opts := parabolic.DefaultSDTOptions()
		insideStr, _ := PromptLine("inside positive? (y/N): ")
		opts.InsideIsPositive = strings.EqualFold(strings.TrimSpace(insideStr), "y")
		outsideStr, _ := PromptLine("outside value (default 0): ")
		if v, err := strconv.ParseFloat(strings.TrimSpace(outsideStr), 64); err == nil {
			opts.OutsideValue = v
		}
		opts.Progress = func(fraction float64) {
			fmt.Printf("sdt: %.0f%% done\n", fraction*100)
		}
		parabolic.SetUnderflowLogger(log)
		return parabolic.SignedDistanceTransform(cur, opts)

	case "sharpen":
		dilated := cur.Clone()
		parabolic.Separable(dilated, cur, sigmas, spacing, parabolic.Dilate, parabolic.Auto, parabolic.Float64Extremes, workers)
		eroded := cur.Clone()
		parabolic.Separable(eroded, cur, sigmas, spacing, parabolic.Erode, parabolic.Auto, parabolic.Float64Extremes, workers)

		out := ndimage.NewWithSpacing[float64](cur.Size, cur.Spacing)
		parabolic.CombineSharpenInto(out.Data, dilated.Data, cur.Data, eroded.Data)
		return out
	}

	return cur
}

// applyResize resamples a 2-D slice to a new height/width via
// ndimage.Resize2D, letting a user shrink a slice before a preview or
// match a target volume's in-plane resolution.
func applyResize(cur *ndimage.Image[float64]) *ndimage.Image[float64] {
	if cur.NumAxes() != 2 {
		fmt.Println("resize only supports 2-D slices")
		return cur
	}
	hStr, _ := PromptLine(fmt.Sprintf("new height (current %d): ", cur.Size[0]))
	wStr, _ := PromptLine(fmt.Sprintf("new width (current %d): ", cur.Size[1]))
	newH, errH := strconv.Atoi(strings.TrimSpace(hStr))
	newW, errW := strconv.Atoi(strings.TrimSpace(wStr))
	if errH != nil || errW != nil || newH <= 0 || newW <= 0 {
		fmt.Println("invalid height/width")
		return cur
	}
	return ndimage.Resize2D(cur, newH, newW)
}

func resolveCommandName(selection string) string {
	if idx, err := strconv.Atoi(selection); err == nil {
		if idx < 1 || idx > len(commandNames) {
			return ""
		}
		return commandNames[idx-1]
	}
	lower := strings.ToLower(selection)
	for _, name := range commandNames {
		if name == lower {
			return name
		}
	}
	return ""
}
