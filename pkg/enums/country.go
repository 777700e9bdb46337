package enums

// CountryCode pairs an ISO 3166-1 alpha-2 code with a display name.
type CountryCode struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CountryCodes lists the countries served by the routing surface.
func CountryCodes() []CountryCode {
	return []CountryCode{
		{Code: "TR", Name: "Türkiye"},
		{Code: "AL", Name: "Albania"},
		{Code: "AT", Name: "Austria"},
		{Code: "AZ", Name: "Azerbaijan"},
		{Code: "BA", Name: "Bosnia and Herzegovina"},
		{Code: "BE", Name: "Belgium"},
		{Code: "BG", Name: "Bulgaria"},
		{Code: "CH", Name: "Switzerland"},
		{Code: "CZ", Name: "Czechia"},
		{Code: "DE", Name: "Germany"},
		{Code: "DK", Name: "Denmark"},
		{Code: "ES", Name: "Spain"},
		{Code: "FR", Name: "France"},
		{Code: "GE", Name: "Georgia"},
		{Code: "GR", Name: "Greece"},
		{Code: "HR", Name: "Croatia"},
		{Code: "HU", Name: "Hungary"},
		{Code: "IQ", Name: "Iraq"},
		{Code: "IR", Name: "Iran"},
		{Code: "IT", Name: "Italy"},
		{Code: "MK", Name: "North Macedonia"},
		{Code: "NL", Name: "Netherlands"},
		{Code: "PL", Name: "Poland"},
		{Code: "PT", Name: "Portugal"},
		{Code: "RO", Name: "Romania"},
		{Code: "RS", Name: "Serbia"},
		{Code: "SE", Name: "Sweden"},
		{Code: "SI", Name: "Slovenia"},
		{Code: "SK", Name: "Slovakia"},
		{Code: "UA", Name: "Ukraine"},
		{Code: "UK", Name: "United Kingdom"},
	}
}
