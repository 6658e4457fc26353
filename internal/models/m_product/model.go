package m_product

import "go.mongodb.org/mongo-driver/bson"

// Model provides a facade for building product write documents.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// ReplaceDoc builds the update that overwrites every display field.
// Blank optional attributes are unset rather than stored as "", so the
// stored document matches what an insert of the same data would hold.
func (m *Model) ReplaceDoc(data *Data) bson.D {
	set := bson.D{
		{Key: ProductName, Value: data.ProductName},
		{Key: BrandName, Value: data.BrandName},
		{Key: Category, Value: data.Category},
		{Key: Status, Value: data.Status},
		{Key: Price, Value: data.Price},
	}
	var unset bson.D

	for _, f := range []struct {
		key   string
		value string
	}{
		{Gender, data.Gender},
		{Origin, data.Origin},
		{FrameMaterial, data.FrameMaterial},
		{FrameSize, data.FrameSize},
		{FrameType, data.FrameType},
		{Color, data.Color},
		{LensMaterial, data.LensMaterial},
		{Prescription, data.Prescription},
		{Dimensions, data.Dimensions},
		{Warranty, data.Warranty},
		{Description, data.Description},
		{Image, data.Image},
	} {
		if f.value == "" {
			unset = append(unset, bson.E{Key: f.key, Value: ""})
			continue
		}
		set = append(set, bson.E{Key: f.key, Value: f.value})
	}

	doc := bson.D{{Key: "$set", Value: set}}
	if len(unset) > 0 {
		doc = append(doc, bson.E{Key: "$unset", Value: unset})
	}
	return doc
}

// DisplayFields lists the fields returned by catalog listings.
func DisplayFields() []string {
	return []string{
		ProductName, BrandName, Category, Gender, Origin,
		FrameMaterial, FrameSize, FrameType, Color,
		Image, Status, Price,
	}
}
