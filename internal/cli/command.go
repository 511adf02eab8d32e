package cli

import (
	"io"

	"github.com/phambaophuc/paddington/internal/config"
	"github.com/phambaophuc/paddington/internal/models"
	"github.com/phambaophuc/paddington/internal/ratio"
	"github.com/spf13/cobra"
)

const (
	programName = "paddington"
	about       = "Add padding or crop images to fit an aspect ratio."
)

func newCommand(opts *models.CommandOptions, ran *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   programName + " [flags] <ratio> <input> <output>",
		Short: about,
		Long: about + `

  ratio   Ratio of the output image. Formatted as 'width:height', e.g. '4:3'.
  input   Path to input image.
  output  Path to output image.`,
		Args:          cobra.MatchAll(cobra.ExactArgs(3), ratioArg(opts)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[1]
			opts.Output = args[2]
			*ran = true
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.Crop, "crop", "c", false, "Crop the image down to the target ratio instead of adding padding.")
	flags.CountVarP(&opts.Verbose, "verbose", "v", "Verbosity of output. e.g. -v, -vv, -vvv, etc.")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "Do not print anything to stdout. Supersedes the --verbose flag.")

	return cmd
}

// ratioArg parses the first positional before anything touches the
// filesystem.
func ratioArg(opts *models.CommandOptions) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		r, err := ratio.Parse(args[0])
		if err != nil {
			return err
		}
		opts.Ratio = r
		return nil
	}
}

// Parse turns process arguments into CommandOptions. Usage is written to
// stdout when -h is given, in which case ErrHelp is returned. Every other
// error is an *ExitError with ExitUsage.
func Parse(args []string, stdout io.Writer, cfg *config.Config) (models.CommandOptions, error) {
	var (
		opts models.CommandOptions
		ran  bool
	)

	if args == nil {
		args = []string{}
	}

	cmd := newCommand(&opts, &ran)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stdout)

	if err := cmd.Execute(); err != nil {
		return models.CommandOptions{}, usageError(err)
	}
	if !ran {
		return models.CommandOptions{}, ErrHelp
	}

	if cfg != nil && !cmd.Flags().Changed("verbose") {
		opts.Verbose = cfg.Log.DefaultVerbosity
	}

	return opts, nil
}
