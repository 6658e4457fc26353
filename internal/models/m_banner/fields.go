package m_banner

// Field name constants for the banners collection.
const (
	CollectionName = "banners"

	ID     = "_id"
	Title  = "title"
	Image  = "image"
	Link   = "link"
	Status = "status"
)
