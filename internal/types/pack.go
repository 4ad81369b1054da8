package types

// PackIdentifier is the parsed form of `<family>` or `<family>==<version>`.
type PackIdentifier struct {
	Family     string
	Version    string
	HasVersion bool
}

// Family maps a short family token to the vendor pack it is published as.
type Family struct {
	Name   string
	Vendor string
	Pack   string
}

// DownloadName is the filename stem used on the index page,
// e.g. Microchip.ATmega_DFP.
func (f Family) DownloadName() string {
	return f.Vendor + "." + f.Pack
}

type ResolvedPack struct {
	Identifier PackIdentifier
	Family     Family
	Available  []string
}

type DeviceFile struct {
	Controller string
	Data       []byte
}

type PackReport struct {
	Family       string   `yaml:"family"`
	DownloadName string   `yaml:"download_name"`
	Version      string   `yaml:"version"`
	URL          string   `yaml:"url"`
	Available    []string `yaml:"available"`
	Controllers  []string `yaml:"controllers,omitempty"`
}
