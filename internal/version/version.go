package version

const (
	AppName        = "Toolmaker"
	AppDescription = "A Mesolithic workshop that keeps your daily streak alive"
)

// Version is set at build time with -ldflags "-X .../internal/version.Version=...".
var Version = "dev"
