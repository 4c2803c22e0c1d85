package shop

import "encoding/xml"

// Kinds of catalog record a listing can resolve to.
const (
	KindItem = "item"
	KindShip = "ship"
)

// Shop is one vendor and the listings that resolved.
type Shop struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Location   string     `json:"location,omitempty"`
	SourceFile string     `json:"sourceFile"`
	Inventory  []*Listing `json:"inventory,omitempty"`
}

// Listing is one product a shop buys or sells.
type Listing struct {
	ItemRef   string  `json:"itemRef"`
	Kind      string  `json:"kind"`
	Name      string  `json:"name,omitempty"`
	BasePrice float64 `json:"basePrice"`
	Buyable   bool    `json:"buyable"`
	Sellable  bool    `json:"sellable"`
}

type shopFile struct {
	XMLName   xml.Name
	ID        string        `xml:"id,attr"`
	Name      string        `xml:"name,attr"`
	Location  string        `xml:"location,attr"`
	Inventory []productFile `xml:"inventory>ShopProduct"`
}

type productFile struct {
	ItemRef   string `xml:"itemRef,attr"`
	BasePrice string `xml:"basePrice,attr"`
	Buyable   string `xml:"buyable,attr"`
	Sellable  string `xml:"sellable,attr"`
}
