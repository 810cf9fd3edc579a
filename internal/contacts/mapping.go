package contacts

import (
	"github.com/billforge/billforge/pkg/query"
	"github.com/billforge/billforge/pkg/repository"
)

var contactProjection = query.
	NewProjectionMap("public", "contacts", "c").
	Project("id", "ID").
	Project("user_id", "UserID").
	Project("name", "Name").
	Project("email", "Email").
	Project("phone", "Phone").
	Project("address", "Address").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Name"}

func scanContact(s repository.Scanner) (Contact, error) {
	var c Contact
	err := s.Scan(
		&c.ID, &c.UserID, &c.Name,
		&c.Email, &c.Phone, &c.Address,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}
