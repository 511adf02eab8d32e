package models

import "fmt"

// CommandOptions holds everything parsed from the command line. Quiet wins
// over Verbose.
type CommandOptions struct {
	Ratio   Ratio  `json:"ratio"`
	Input   string `json:"input"`
	Output  string `json:"output"`
	Crop    bool   `json:"crop"`
	Verbose int    `json:"verbose"`
	Quiet   bool   `json:"quiet"`
}

func (o CommandOptions) Mode() Mode {
	if o.Crop {
		return ModeCrop
	}
	return ModePad
}

func (o CommandOptions) String() string {
	return fmt.Sprintf(
		"CommandOptions{ratio: %s, input: %q, output: %q, crop: %t, verbose: %d, quiet: %t}",
		o.Ratio, o.Input, o.Output, o.Crop, o.Verbose, o.Quiet,
	)
}

type Mode string

const (
	ModePad  Mode = "pad"
	ModeCrop Mode = "crop"
)
