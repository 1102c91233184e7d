package domain

// CareProvider is a pharmacy or clinic from the static care directory.
type CareProvider struct {
	ID             string
	Name           string
	Location       string
	IsOpen         bool
	OffersDelivery bool
	Phone          string
}
