// Command morphcli is an interactive shell for running separable
// parabolic morphology and signed distance transforms over grayscale
// slices, grounded on the teacher's cmd entrypoint shape.
package main

import "github.com/parabolicmorph/sdt/pkg/cli"

func main() {
	// Best effort: a missing .env is not an error, just means defaults apply.
	_ = cli.LoadDotEnv(".env")
	cli.RunCLI()
}
