package content

import (
	"fmt"
	"os"
)

// CheckStructure verifies the content root and reports which layout folders
// are missing. A missing or unreadable root is fatal; missing kind folders
// are not, their loaders simply produce empty indices.
func CheckStructure(cfg Config) ([]string, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("%w: content root is not set", ErrFatalConfig)
	}

	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: content root %s: %v", ErrFatalConfig, cfg.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: content root %s is not a directory", ErrFatalConfig, cfg.Root)
	}

	t := NewTree(cfg)
	var missing []string
	for _, folder := range []string{
		cfg.Localization,
		cfg.Manufacturers,
		cfg.Ammo,
		cfg.Items,
		cfg.Spaceships,
		cfg.GroundVehicles,
		cfg.Shops,
		cfg.Starmap,
	} {
		if info, err := os.Stat(t.Path(folder)); err != nil || !info.IsDir() {
			missing = append(missing, folder)
		}
	}

	return missing, nil
}
