package registry

// Config holds the locations of the two baseline descriptor files.
type Config struct {
	// VanillaPath is the path of the vanilla enemy descriptor file.
	VanillaPath string `mapstructure:"vanilla_path" default:"VanillaEnemyDescriptors.json"`
	// ModPath is the path of the mod-added enemy descriptor file.
	ModPath string `mapstructure:"mod_path" default:"ModDescriptors.json"`
}
