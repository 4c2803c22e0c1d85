package starmap

import "encoding/xml"

// Object is one star map body, station or jump point.
type Object struct {
	ID              string   `json:"id"`
	Name            string   `json:"name,omitempty"`
	Description     string   `json:"description,omitempty"`
	Type            string   `json:"type,omitempty"`
	Size            float64  `json:"size,omitempty"`
	Parent          string   `json:"parent,omitempty"`
	JumpDestination string   `json:"jumpDestination,omitempty"`
	Children        []string `json:"children,omitempty"`
	SourceFile      string   `json:"sourceFile"`
}

type objectFile struct {
	XMLName         xml.Name
	Ref             string `xml:"__ref,attr"`
	Name            string `xml:"name,attr"`
	Description     string `xml:"description,attr"`
	Type            string `xml:"type,attr"`
	Size            string `xml:"size,attr"`
	Parent          string `xml:"parent,attr"`
	JumpDestination string `xml:"jumpDestination,attr"`
}
