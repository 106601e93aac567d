package presentation

const (
	AuthKey          = "Authorization"
	IdentityKey      = "identity"
	IDParam          = "id"
	FileField        = "file"
	DescriptionField = "description"
	PageQuery        = "page"
	SizeQuery        = "size"
	SortByQuery      = "sort_by"
	SortDescQuery    = "sort_desc"
	StatusOK         = "ok"
)
