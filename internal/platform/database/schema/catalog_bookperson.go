package schema

// CatalogBookPersonTable represents the shared shape of the
// 'catalog.bookauthor' and 'catalog.booktranslator' link tables
type CatalogBookPersonTable struct {
	Table    string
	BookID   string
	PersonID string
	Position string
}

// CatalogBookAuthor is the schema definition for catalog.bookauthor
var CatalogBookAuthor = CatalogBookPersonTable{
	Table:    "catalog.bookauthor",
	BookID:   "bookid",
	PersonID: "authorid",
	Position: "position",
}

// CatalogBookTranslator is the schema definition for catalog.booktranslator
var CatalogBookTranslator = CatalogBookPersonTable{
	Table:    "catalog.booktranslator",
	BookID:   "bookid",
	PersonID: "translatorid",
	Position: "position",
}

func (t CatalogBookPersonTable) Columns() []string {
	return []string{t.BookID, t.PersonID, t.Position}
}
