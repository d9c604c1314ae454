package types

// Contact is one directory record. Contacts have no identity beyond their
// field values; two contacts with equal fields are interchangeable.
type Contact struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// NewContact returns a Contact with the given fields.
func NewContact(name, phoneNumber, email string) Contact {
	return Contact{Name: name, PhoneNumber: phoneNumber, Email: email}
}

// Matches reports whether all three fields equal the given values exactly.
func (c Contact) Matches(name, phoneNumber, email string) bool {
	return c.Name == name && c.PhoneNumber == phoneNumber && c.Email == email
}
