package models

// MessageResponse is the generic JSON body `{"message": "..."}` returned for
// success confirmations and for every client-visible error.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateSheetResponse is the body of a successful POST /sheets call.
type CreateSheetResponse struct {
	Message string `json:"message"`
	SheetID int64  `json:"sheetId"`
}

// ListSheetsResponse is the body of a successful GET /sheets call.
type ListSheetsResponse struct {
	Sheets []Sheet `json:"sheets"`
}

// ProtectedResponse is the body of a successful GET /protected call.
type ProtectedResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}
