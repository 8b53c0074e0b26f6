package transport

// StartImportForm is the multipart form accompanying the CSV file.
// Mapping and repIds arrive JSON-encoded in their form fields.
type StartImportForm struct {
	ListName       string `form:"listName" validate:"required,min=1,max=200"`
	Industry       string `form:"industry" validate:"omitempty,max=100"`
	AutoAssign     bool   `form:"autoAssign"`
	RepIDs         string `form:"repIds"`
	SkipDuplicates bool   `form:"skipDuplicates"`
	Mapping        string `form:"mapping" validate:"required"`
}
