package domain

// Address captures structured postal address fields. Country is omitted for
// entities that never carry one (payees).
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
	Country string `json:"country,omitempty"`
}

// Identity is a synthetic bank customer. The username doubles as the informal
// key that account records point back to.
type Identity struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	Email       string  `json:"email"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Address     Address `json:"address"`
	Phone       string  `json:"phone"`
	DateOfBirth Date    `json:"date_of_birth"`
	SSNLast4    string  `json:"ssn_last_4"`
	Has2FA      bool    `json:"has_2fa"`
	// TOTPSecret is present only when Has2FA is set.
	TOTPSecret string `json:"totp_secret,omitempty"`
}
