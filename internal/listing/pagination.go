package listing

// Page is a pagination link. Links are rendered but do not change the
// visible subset.
type Page struct {
	Number int
	Active bool
}

// Pages returns the fixed pagination strip shown under every table.
func Pages() []Page {
	return []Page{{Number: 1, Active: true}, {Number: 2}, {Number: 3}}
}
