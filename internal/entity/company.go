package entity

// CompanyProfile holds the business facts used to fill chatbot response
// templates. Fetched from the company data endpoint; the JSON tags match its
// payload shape.
type CompanyProfile struct {
	Name        string   `json:"company_name"`
	Industry    string   `json:"industry"`
	Mission     string   `json:"mission"`
	Products    []string `json:"products"`
	Services    []string `json:"services"`
	ContactInfo string   `json:"contact_info"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	Website     string   `json:"website"`
	About       string   `json:"about"`
}
