package loadout

import "encoding/xml"

// Slot is one expanded item port.
type Slot struct {
	PortName    string  `json:"portName,omitempty"`
	ItemName    string  `json:"itemName,omitempty"`
	LoadoutPath string  `json:"loadoutPath,omitempty"`
	Truncated   bool    `json:"truncated,omitempty"`
	Missing     bool    `json:"missing,omitempty"`
	Entries     []*Slot `json:"entries,omitempty"`
}

// Walk calls fn for s and every slot below it, depth first.
func (s *Slot) Walk(fn func(*Slot)) {
	if s == nil {
		return
	}
	fn(s)
	for _, e := range s.Entries {
		e.Walk(fn)
	}
}

// Params is the <loadout> element of an entity definition.
type Params struct {
	File   *FileParams   `xml:"SItemPortLoadoutXMLParams" json:"file,omitempty"`
	Manual *ManualParams `xml:"SItemPortLoadoutManualParams" json:"manual,omitempty"`
}

// FileParams points at a loadout file relative to the data folder.
type FileParams struct {
	Path string `xml:"loadoutPath,attr" json:"loadoutPath"`
}

// ManualParams lists loadout entries inline.
type ManualParams struct {
	Entries []Entry `xml:"entries>SItemPortLoadoutEntryParams" json:"entries,omitempty"`
}

// Entry is one inline loadout entry.
type Entry struct {
	PortName  string `xml:"itemPortName,attr" json:"itemPortName,omitempty"`
	ClassName string `xml:"entityClassName,attr" json:"entityClassName,omitempty"`
	Loadout   Params `xml:"loadout" json:"loadout"`
}

type loadoutFile struct {
	XMLName xml.Name   `xml:"Loadout"`
	Items   []fileItem `xml:"Items>Item"`
}

type fileItem struct {
	PortName string     `xml:"portName,attr"`
	ItemName string     `xml:"itemName,attr"`
	Loadout  string     `xml:"loadout,attr"`
	Items    []fileItem `xml:"Items>Item"`
}
