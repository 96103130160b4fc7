package schema

// CatalogTermTable represents the shared shape of 'catalog.category' and
// 'catalog.publisher'
type CatalogTermTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	CreatedAt string
}

// CatalogCategory is the schema definition for catalog.category
var CatalogCategory = CatalogTermTable{
	Table:     "catalog.category",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "createdat",
}

// CatalogPublisher is the schema definition for catalog.publisher
var CatalogPublisher = CatalogTermTable{
	Table:     "catalog.publisher",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "createdat",
}

func (t CatalogTermTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.CreatedAt}
}
