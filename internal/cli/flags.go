package cli

import "flag"

// Flags holds all command line flags
type Flags struct {
	Version *bool
	Verbose *bool
	Json    *bool
	Prompt  *string
}

// InitFlags defines all command line flags on fs
func InitFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		Version: fs.Bool("version", false, "Show version information"),
		Verbose: fs.Bool("verbose", false, "Enable verbose logging on stderr"),
		Json:    fs.Bool("json", false, "Output results in JSON format"),
		Prompt:  fs.String("prompt", ">> ", "Prompt printed by the interactive calculator"),
	}
}

// ParseFlags defines the flags on fs and parses args with custom usage
func ParseFlags(fs *flag.FlagSet, args []string, usage func()) (*Flags, error) {
	flags := InitFlags(fs)
	fs.Usage = usage
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return flags, nil
}
