package schema

// CatalogPersonTable represents the shared shape of 'catalog.author' and
// 'catalog.translator'
type CatalogPersonTable struct {
	Table     string
	ID        string
	FullName  string
	Slug      string
	CreatedAt string
}

// CatalogAuthor is the schema definition for catalog.author
var CatalogAuthor = CatalogPersonTable{
	Table:     "catalog.author",
	ID:        "id",
	FullName:  "fullname",
	Slug:      "slug",
	CreatedAt: "createdat",
}

// CatalogTranslator is the schema definition for catalog.translator
var CatalogTranslator = CatalogPersonTable{
	Table:     "catalog.translator",
	ID:        "id",
	FullName:  "fullname",
	Slug:      "slug",
	CreatedAt: "createdat",
}

func (t CatalogPersonTable) Columns() []string {
	return []string{t.ID, t.FullName, t.Slug, t.CreatedAt}
}
