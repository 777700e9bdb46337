package types

// RouteStop describes one end of an order's route, including the on-site
// contact. Embedded into the order row with a from_/to_ column prefix.
type RouteStop struct {
	Country      string `gorm:"column:country;not null" json:"country"`
	City         string `gorm:"column:city;not null" json:"city"`
	District     string `gorm:"column:district" json:"district,omitempty"`
	PostalCode   string `gorm:"column:postal_code;not null" json:"postalCode"`
	Address      string `gorm:"column:address" json:"address,omitempty"`
	ContactName  string `gorm:"column:contact_name" json:"contactName,omitempty"`
	ContactPhone string `gorm:"column:contact_phone" json:"contactPhone,omitempty"`
	ContactEmail string `gorm:"column:contact_email" json:"contactEmail,omitempty"`
}
