package schema

// SocialCommentTable represents the 'social.comment' table
type SocialCommentTable struct {
	Table     string
	ID        string
	BookID    string
	FullName  string
	Text      string
	Rating    string
	Status    string
	CreatedAt string
}

// SocialComment is the schema definition for social.comment
var SocialComment = SocialCommentTable{
	Table:     "social.comment",
	ID:        "id",
	BookID:    "bookid",
	FullName:  "fullname",
	Text:      "text",
	Rating:    "rating",
	Status:    "status",
	CreatedAt: "createdat",
}

func (t SocialCommentTable) Columns() []string {
	return []string{t.ID, t.BookID, t.FullName, t.Text, t.Rating, t.Status, t.CreatedAt}
}
