package zebra

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"

	"github.com/mortonl/zebra-label-generator-sub001/api"
)

// PrinterProfile is one printer in a profiles file: its head density and the
// media loaded in it. A missing media length means continuous media.
type PrinterProfile struct {
	DPI         int      `toml:"dpi"`
	MediaWidth  float64  `toml:"media_width"`
	MediaLength *float64 `toml:"media_length,omitempty"`
}

// PrinterProfiles is a TOML file describing the printers labels are rendered
// for, e.g.
//
//	[profiles.dock]
//	dpi = 203
//	media_width = 110.0
//
//	[profiles.office]
//	dpi = 300
//	media_width = 110.0
//	media_length = 152.4
type PrinterProfiles struct {
	Profiles map[string]PrinterProfile `toml:"profiles"`
}

// LoadPrinterProfiles parses a printer profiles file.
func LoadPrinterProfiles(path string) (PrinterProfiles, error) {
	file, err := os.Open(path)
	if err != nil {
		return PrinterProfiles{}, fmt.Errorf("failed to open printer profiles: %w", err)
	}
	defer file.Close()

	var profiles PrinterProfiles
	if err := toml.NewDecoder(file).Decode(&profiles); err != nil {
		return PrinterProfiles{}, fmt.Errorf("failed to parse printer profiles: %w", err)
	}
	return profiles, nil
}

// Printer resolves a named profile to a printer configuration.
func (p PrinterProfiles) Printer(name string) (api.PrinterConfiguration, error) {
	profile, ok := p.Profiles[name]
	if !ok {
		return api.PrinterConfiguration{}, fmt.Errorf("unknown printer profile %q, known profiles: %v",
			name, p.Names())
	}
	return PrinterSpec{
		DPI:         profile.DPI,
		MediaWidth:  profile.MediaWidth,
		MediaLength: profile.MediaLength,
	}.build()
}

// Names returns the profile names in a stable order.
func (p PrinterProfiles) Names() []string {
	names := lo.Keys(p.Profiles)
	sort.Strings(names)
	return names
}
