package records

import (
	"encoding/json"
	"net/url"

	"github.com/billforge/billforge/internal/documents"
	"github.com/billforge/billforge/pkg/query"
	"github.com/billforge/billforge/pkg/repository"
)

var recordProjection = query.
	NewProjectionMap("public", "records", "r").
	Project("id", "ID").
	Project("user_id", "UserID").
	Project("kind", "Kind").
	Project("number", "Number").
	Project("currency", "Currency").
	Project("total", "Total").
	Project("document", "Document").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

func scanRecord(s repository.Scanner) (Record, error) {
	var r Record
	var doc []byte

	err := s.Scan(
		&r.ID, &r.UserID, &r.Kind, &r.Number,
		&r.Currency, &r.Total, &doc, &r.CreatedAt,
	)
	if err != nil {
		return r, err
	}

	err = json.Unmarshal(doc, &r.Document)
	return r, err
}

// Filters narrows record listings.
type Filters struct {
	Kind *documents.Kind
}

// FiltersFromQuery parses listing filters from URL query values.
func FiltersFromQuery(values url.Values) Filters {
	var kind *documents.Kind
	if k := documents.Kind(values.Get("kind")); k.Valid() {
		kind = &k
	}
	return Filters{Kind: kind}
}

// Apply adds the filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Kind != nil {
		b.WhereEquals("Kind", f.Kind)
	}
	return b
}
