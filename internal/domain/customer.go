package domain

import "time"

// Customer owns zero or more accounts. Managed entirely by the customer
// CRUD collaborator; the transaction core never touches it.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
