package models

import (
	"scdb-loader/feature/loadout"
	"scdb-loader/feature/reference"
)

// Item is one resolved item entity.
type Item struct {
	ClassName    string            `json:"className"`
	SourceFile   string            `json:"sourceFile"`
	Name         string            `json:"name,omitempty"`
	Description  string            `json:"description,omitempty"`
	Type         string            `json:"type,omitempty"`    // WeaponGun, Shield, ...
	SubType      string            `json:"subType,omitempty"` // Gun, UNDEFINED, ...
	Size         int               `json:"size"`
	Grade        int               `json:"grade"`
	Manufacturer *reference.Record `json:"manufacturer,omitempty"`
	Ammo         *reference.Record `json:"ammo,omitempty"`
	Loadout      *loadout.Slot     `json:"loadout,omitempty"`
}

// Ship is one resolved spaceship or ground vehicle.
type Ship struct {
	ClassName        string            `json:"className"`
	SourceFile       string            `json:"sourceFile"`
	Name             string            `json:"name,omitempty"`
	Description      string            `json:"description,omitempty"`
	Career           string            `json:"career,omitempty"`
	Role             string            `json:"role,omitempty"`
	Size             int               `json:"size"`
	Crew             int               `json:"crew"`
	IsSpaceship      bool              `json:"isSpaceship"`
	IsGroundVehicle  bool              `json:"isGroundVehicle"`
	IsGravlevVehicle bool              `json:"isGravlevVehicle"`
	DogFightEnabled  bool              `json:"dogFightEnabled"`
	Manufacturer     *reference.Record `json:"manufacturer,omitempty"`
	Loadout          *loadout.Slot     `json:"loadout,omitempty"`
}
