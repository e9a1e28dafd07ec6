// Package style lists the cell style properties a history token can edit
// and normalises their values.
package style
