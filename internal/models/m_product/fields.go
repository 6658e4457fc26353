package m_product

// Field name constants for the products collection.
// These provide type-safe field references and prevent typos.
const (
	CollectionName = "products"

	ID            = "_id"
	ProductName   = "productName"
	BrandName     = "brandName"
	Category      = "category"
	Gender        = "gender"
	Origin        = "origin"
	FrameMaterial = "frameMaterial"
	FrameSize     = "frameSize"
	FrameType     = "frameType"
	Color         = "color"
	LensMaterial  = "lensMaterial"
	Prescription  = "prescription"
	Dimensions    = "dimensions"
	Warranty      = "warranty"
	Status        = "status"
	Description   = "description"
	Image         = "image"
	Price         = "price"
	PriceAmount   = "price.amount"

	// PriceNum is the numeric price derived at query time; it is never stored.
	PriceNum = "priceNum"
)
