package profiles

import (
	"github.com/billforge/billforge/pkg/query"
	"github.com/billforge/billforge/pkg/repository"
)

var profileProjection = query.
	NewProjectionMap("public", "profiles", "p").
	Project("id", "ID").
	Project("user_id", "UserID").
	Project("business_name", "BusinessName").
	Project("business_email", "BusinessEmail").
	Project("business_phone", "BusinessPhone").
	Project("business_address", "BusinessAddress").
	Project("logo_key", "LogoKey").
	Project("default_currency", "DefaultCurrency").
	Project("default_notes", "DefaultNotes").
	Project("default_terms", "DefaultTerms").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "BusinessName"}

func scanProfile(s repository.Scanner) (Profile, error) {
	var p Profile
	err := s.Scan(
		&p.ID, &p.UserID, &p.BusinessName,
		&p.BusinessEmail, &p.BusinessPhone, &p.BusinessAddress,
		&p.LogoKey, &p.DefaultCurrency, &p.DefaultNotes,
		&p.DefaultTerms, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
