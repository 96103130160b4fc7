package schema

// CatalogBookTable represents the 'catalog.book' table
type CatalogBookTable struct {
	Table           string
	ID              string
	Name            string
	Slug            string
	Image           string
	Price           string
	Discount        string
	Description     string
	Pages           string
	PublicationYear string
	SoldCount       string
	AuthorIDs       string
	TranslatorIDs   string
	CategoryID      string
	PublisherID     string
	CreatedAt       string
	UpdatedAt       string
}

// CatalogBook is the schema definition for catalog.book
var CatalogBook = CatalogBookTable{
	Table:           "catalog.book",
	ID:              "id",
	Name:            "name",
	Slug:            "slug",
	Image:           "image",
	Price:           "price",
	Discount:        "discount",
	Description:     "description",
	Pages:           "pages",
	PublicationYear: "publicationyear",
	SoldCount:       "soldcount",
	AuthorIDs:       "authorids",
	TranslatorIDs:   "translatorids",
	CategoryID:      "categoryid",
	PublisherID:     "publisherid",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

func (t CatalogBookTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.Image, t.Price, t.Discount, t.Description, t.Pages,
		t.PublicationYear, t.SoldCount, t.AuthorIDs, t.TranslatorIDs, t.CategoryID,
		t.PublisherID, t.CreatedAt, t.UpdatedAt,
	}
}
