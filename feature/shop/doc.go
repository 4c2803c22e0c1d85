// Package shop loads shop inventories and cross-checks every listing against
// the item and ship indices.
//
// A listing whose itemRef names neither an item nor a ship is dropped from
// the catalog and written as one line to the missing-references logger.
// Bad references never fail a run.
package shop
