package m_category

// Field name constants for the categories collection.
const (
	CollectionName = "categories"

	ID          = "_id"
	Name        = "name"
	Image       = "image"
	Description = "description"
)
