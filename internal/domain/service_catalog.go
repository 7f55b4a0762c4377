package domain

// ServiceOption is one offering selectable on the contact form.
type ServiceOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ServiceCatalog is the fixed set of services the site offers. The contact
// form's service field must be empty or one of these identifiers.
var ServiceCatalog = []ServiceOption{
	{ID: "backlit-flex", Name: "Backlit Flex"},
	{ID: "non-lit-flex", Name: "Non-Lit Flex"},
	{ID: "standees", Name: "Standees"},
	{ID: "vinyl-flex", Name: "Vinyl Flex"},
	{ID: "consultation", Name: "Consultation"},
}

// KnownService reports whether id names an entry in the service catalog.
func KnownService(id string) bool {
	for _, s := range ServiceCatalog {
		if s.ID == id {
			return true
		}
	}
	return false
}
