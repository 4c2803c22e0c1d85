package content

// Config describes where the definition files live inside the content root.
// Every folder is relative to Root.
type Config struct {
	// Root is the extracted game data directory (the folder containing Data/).
	Root string `mapstructure:"root" default:""`
	// Language selects the localization folder (e.g. english).
	Language string `mapstructure:"language" default:"english"`
	// DataDir is the folder that in-file references (loadout paths) are relative to.
	DataDir string `mapstructure:"data_dir" default:"Data"`
	// Localization holds one sub-folder per language with a global.ini each.
	Localization string `mapstructure:"localization" default:"Data/Localization"`
	// Manufacturers holds SCItemManufacturer records.
	Manufacturers string `mapstructure:"manufacturers" default:"Data/Libs/Foundry/Records/scitemmanufacturer"`
	// Ammo holds AmmoParams records.
	Ammo string `mapstructure:"ammo" default:"Data/Libs/Foundry/Records/ammoparams"`
	// Items holds item entity definitions.
	Items string `mapstructure:"items" default:"Data/Libs/Foundry/Records/entities/scitem"`
	// Spaceships holds spaceship entity definitions.
	Spaceships string `mapstructure:"spaceships" default:"Data/Libs/Foundry/Records/entities/spaceships"`
	// GroundVehicles holds ground and gravlev vehicle entity definitions.
	GroundVehicles string `mapstructure:"ground_vehicles" default:"Data/Libs/Foundry/Records/entities/groundvehicles"`
	// Shops holds shop inventories.
	Shops string `mapstructure:"shops" default:"Data/Libs/Foundry/Records/shops"`
	// Starmap holds StarMapObject records.
	Starmap string `mapstructure:"starmap" default:"Data/Libs/Foundry/Records/starmap"`
}

// DefaultConfig returns the standard layout of an extracted data tree rooted at root.
func DefaultConfig(root string) Config {
	return Config{
		Root:           root,
		Language:       "english",
		DataDir:        "Data",
		Localization:   "Data/Localization",
		Manufacturers:  "Data/Libs/Foundry/Records/scitemmanufacturer",
		Ammo:           "Data/Libs/Foundry/Records/ammoparams",
		Items:          "Data/Libs/Foundry/Records/entities/scitem",
		Spaceships:     "Data/Libs/Foundry/Records/entities/spaceships",
		GroundVehicles: "Data/Libs/Foundry/Records/entities/groundvehicles",
		Shops:          "Data/Libs/Foundry/Records/shops",
		Starmap:        "Data/Libs/Foundry/Records/starmap",
	}
}
