package models

import "time"

// Sheet is a named timesheet record: dated minute entries, an hourly rate,
// and totals computed by the client.
//
// Rate and TotalCost are decimal strings end to end — the server stores and
// returns them verbatim and never re-interprets them numerically.
type Sheet struct {
	// SheetID is the store-assigned identifier of the sheet.
	SheetID int64 `json:"sheetId"`

	// OwnerID is the UserID of the owning account. It is always taken from
	// the verified session, never from the request body, and is immutable
	// after creation.
	OwnerID int64 `json:"-"`

	// SheetName is the required display name of the sheet.
	SheetName string `json:"sheetName"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// Rate is the hourly rate as a decimal string (e.g. "20", "17.50").
	Rate string `json:"rate"`

	// Entries is the ordered sequence of dated minute entries.
	Entries []MinuteEntry `json:"minutesEntries"`

	// TotalMinutes is the client-computed sum of entry minutes,
	// redundantly stored.
	TotalMinutes int64 `json:"totalMinutes"`

	// TotalCost is the client-computed cost as a decimal string,
	// redundantly stored.
	TotalCost string `json:"totalCost"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// MinuteEntry is a single dated time entry within a sheet.
type MinuteEntry struct {
	// Date is the entry date in "2006-01-02" form, kept as a string the way
	// the client submits it.
	Date string `json:"date"`

	// Minutes is the time logged for the date.
	Minutes int64 `json:"minutes"`
}

// TableName returns the name of the database table
// associated with the Sheet model.
func (s Sheet) TableName() string {
	return "sheets"
}
