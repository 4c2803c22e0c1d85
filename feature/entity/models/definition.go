package models

import (
	"encoding/xml"

	"scdb-loader/feature/loadout"
)

// Definition is the raw EntityClassDefinition document shared by items and
// vehicles. Only the components the loaders read are decoded.
type Definition struct {
	XMLName    xml.Name   `json:"-"`
	ClassName  string     `xml:"-" json:"className"`
	Components Components `xml:"Components" json:"components"`
}

// Components holds the component params of a definition.
type Components struct {
	Attachable     *AttachableParams     `xml:"SAttachableComponentParams" json:"attachable,omitempty"`
	AmmoContainer  *AmmoContainerParams  `xml:"SAmmoContainerComponentParams" json:"ammoContainer,omitempty"`
	DefaultLoadout *DefaultLoadoutParams `xml:"SEntityComponentDefaultLoadoutParams" json:"defaultLoadout,omitempty"`
	Vehicle        *VehicleParams        `xml:"VehicleComponentParams" json:"vehicle,omitempty"`
}

// AttachableParams wraps the attach definition of an item.
type AttachableParams struct {
	AttachDef AttachDef `xml:"AttachDef" json:"attachDef"`
}

// AttachDef describes how an item attaches to a port.
type AttachDef struct {
	Type         string       `xml:"Type,attr" json:"type,omitempty"`
	SubType      string       `xml:"SubType,attr" json:"subType,omitempty"`
	Size         string       `xml:"Size,attr" json:"size,omitempty"`
	Grade        string       `xml:"Grade,attr" json:"grade,omitempty"`
	Manufacturer string       `xml:"Manufacturer,attr" json:"manufacturer,omitempty"` // manufacturer code
	Localization Localization `xml:"Localization" json:"localization"`
}

// Localization holds display text keys.
type Localization struct {
	Name        string `xml:"Name,attr" json:"name,omitempty"`
	Description string `xml:"Description,attr" json:"description,omitempty"`
}

// AmmoContainerParams points at the ammunition an item uses.
type AmmoContainerParams struct {
	AmmoParamsRecord string `xml:"ammoParamsRecord,attr" json:"ammoParamsRecord,omitempty"` // ammo code
}

// DefaultLoadoutParams holds the loadout an entity spawns with.
type DefaultLoadoutParams struct {
	Loadout loadout.Params `xml:"loadout" json:"loadout"`
}

// VehicleParams describes a spaceship or ground vehicle.
type VehicleParams struct {
	Name             string `xml:"vehicleName,attr" json:"vehicleName,omitempty"`
	Description      string `xml:"vehicleDescription,attr" json:"vehicleDescription,omitempty"`
	Career           string `xml:"vehicleCareer,attr" json:"vehicleCareer,omitempty"`
	Role             string `xml:"vehicleRole,attr" json:"vehicleRole,omitempty"`
	Manufacturer     string `xml:"manufacturer,attr" json:"manufacturer,omitempty"`
	CrewSize         string `xml:"crewSize,attr" json:"crewSize,omitempty"`
	Size             string `xml:"size,attr" json:"size,omitempty"`
	DogfightEnabled  string `xml:"dogfightEnabled,attr" json:"dogfightEnabled,omitempty"`
	IsGravlevVehicle string `xml:"isGravlevVehicle,attr" json:"isGravlevVehicle,omitempty"`
}

// Loadout returns the default loadout params, or the zero value.
func (d *Definition) Loadout() loadout.Params {
	if d.Components.DefaultLoadout == nil {
		return loadout.Params{}
	}
	return d.Components.DefaultLoadout.Loadout
}
