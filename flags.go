package zebra

import (
	"github.com/flanksource/commons/logger"
	"github.com/spf13/pflag"
)

type AllFlags struct {
	RenderOptions
	logger.Flags
}

// RenderOptions control how the CLI renders and previews labels.
type RenderOptions struct {
	DPI      int    // Override the profile's print density
	Output   string // Write the rendered stream to a file instead of stdout
	Profile  string // Printer profile name from the profiles file
	Profiles string // Path to the printer profiles file
	NoColor  bool   // Disable colored preview output
	MaxWidth int    // Clamp preview width in terminal cells (0 = terminal width)
}

var Flags = AllFlags{
	Flags: logger.Flags{
		Level:       "info",
		LogToStderr: true,
	},
}

// BindAllFlags adds the rendering and logging flags to a pflag set (for Cobra)
func BindAllFlags(flags *pflag.FlagSet) AllFlags {
	flags.CountVarP(&Flags.Flags.LevelCount, "loglevel", "v", "Increase logging level")
	flags.StringVar(&Flags.Flags.Level, "log-level", "info", "Set the default log level")
	flags.BoolVar(&Flags.Flags.JsonLogs, "json-logs", false, "Print logs in json format to stderr")
	flags.BoolVar(&Flags.Flags.ReportCaller, "report-caller", false, "Report log caller info")
	flags.BoolVar(&Flags.Flags.LogToStderr, "log-to-stderr", true, "Log to stderr instead of stdout")

	flags.IntVar(&Flags.DPI, "dpi", 0, "Render at this density instead of the profile's (152, 203, 300 or 600)")
	flags.StringVarP(&Flags.Output, "output", "o", "", "Write output to a file instead of stdout")
	flags.StringVar(&Flags.Profile, "printer", "", "Printer profile to render for")
	flags.StringVar(&Flags.Profiles, "profiles", "printers.toml", "Path to the printer profiles file")
	flags.BoolVar(&Flags.NoColor, "no-color", false, "Disable colored output")
	flags.IntVar(&Flags.MaxWidth, "max-width", 0, "Maximum preview width in terminal cells (0 = terminal width)")

	return Flags
}

func (a AllFlags) UseFlags() {
	logger.Configure(a.Flags)
	logger.Debugf("using log level %s", a.Level)
}
