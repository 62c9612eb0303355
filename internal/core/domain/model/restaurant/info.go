// Package restaurant provides the restaurant profile used for table
// QR-code generation: identity, table count and print styling.
package restaurant

import (
	"errors"
	"fmt"
	"regexp"

	"tableside/internal/pkg/errs"
)

var (
	// ErrInfoIsNotConstructed is returned when an Info instance was not
	// created through the NewInfo factory method.
	ErrInfoIsNotConstructed = errors.New("Info must be created via NewInfo constructor")

	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// Info is the restaurant profile. Colors are #rrggbb strings applied to the
// printed QR-code pages; CustomText is an optional footer line.
type Info struct {
	id              string
	name            string
	tables          int
	backgroundColor string
	textColor       string
	customText      string

	isConstructed bool
}

// NewInfo creates a restaurant profile with validation.
func NewInfo(id, name string, tables int, backgroundColor, textColor, customText string) (*Info, error) {
	info := &Info{isConstructed: true}

	if err := errors.Join(
		info.setID(id),
		info.setName(name),
		info.setTables(tables),
		info.setColor(&info.backgroundColor, "background color", backgroundColor),
		info.setColor(&info.textColor, "text color", textColor),
	); err != nil {
		return nil, err
	}
	info.customText = customText

	return info, nil
}

// Validate ensures the Info instance was properly constructed.
func (i *Info) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInfoIsNotConstructed
	}
	return nil
}

// ID returns the restaurant identifier embedded in QR payloads.
func (i *Info) ID() string {
	return i.id
}

// Name returns the restaurant display name.
func (i *Info) Name() string {
	return i.name
}

// Tables returns how many table QR codes to produce.
func (i *Info) Tables() int {
	return i.tables
}

// BackgroundColor returns the page background as #rrggbb.
func (i *Info) BackgroundColor() string {
	return i.backgroundColor
}

// TextColor returns the page text color as #rrggbb.
func (i *Info) TextColor() string {
	return i.textColor
}

// CustomText returns the optional footer line, possibly empty.
func (i *Info) CustomText() string {
	return i.customText
}

// QRPayload returns the content encoded into the QR code for a table.
// The format is "<restaurantID>-<table>"; scanners resolve it back to the
// restaurant and table.
func (i *Info) QRPayload(table int) string {
	return fmt.Sprintf("%s-%d", i.id, table)
}

func (i *Info) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("restaurant id")
	}
	i.id = id
	return nil
}

func (i *Info) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	i.name = name
	return nil
}

func (i *Info) setTables(tables int) error {
	if tables <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("tables", fmt.Errorf("%d is not greater than 0", tables))
	}
	i.tables = tables
	return nil
}

func (i *Info) setColor(dst *string, name, value string) error {
	if !hexColorPattern.MatchString(value) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%q is not a #rrggbb color", value))
	}
	*dst = value
	return nil
}
