package m_patient

// Field name constants for the patients collection.
const (
	CollectionName = "patients"

	ID           = "_id"
	Name         = "name"
	Email        = "email"
	Phone        = "phone"
	Age          = "age"
	Gender       = "gender"
	Prescription = "prescription"
	Notes        = "notes"
	CreatedAt    = "createdAt"
)
