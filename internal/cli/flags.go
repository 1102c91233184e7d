package cli

import (
	"io"

	"github.com/spf13/pflag"
)

const (
	flagConfig  = "config"
	flagVerbose = "verbose"
)

// GlobalOptions are the persistent flags main needs before the App exists.
type GlobalOptions struct {
	ConfigPath string
	Verbose    bool
}

func addGlobalFlags(fs *pflag.FlagSet) *GlobalOptions {
	opts := &GlobalOptions{}
	fs.StringVar(&opts.ConfigPath, flagConfig, "", "config file (default ~/.ulcerwise/config.yaml)")
	fs.BoolVarP(&opts.Verbose, flagVerbose, "v", false, "write logs to stderr")
	return opts
}

// ParseGlobalFlags extracts the persistent flags from args, ignoring every
// other flag and argument. Cobra parses the same flags again later.
func ParseGlobalFlags(args []string) (GlobalOptions, error) {
	fs := pflag.NewFlagSet("ulcerwise", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.ParseErrorsAllowlist.UnknownFlags = true
	fs.Usage = func() {}
	opts := addGlobalFlags(fs)
	if err := fs.Parse(args); err != nil && err != pflag.ErrHelp {
		return GlobalOptions{}, err
	}
	return *opts, nil
}
