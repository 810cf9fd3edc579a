package drafts

import (
	"encoding/json"

	"github.com/billforge/billforge/pkg/query"
	"github.com/billforge/billforge/pkg/repository"
)

var draftProjection = query.
	NewProjectionMap("public", "drafts", "d").
	Project("id", "ID").
	Project("user_id", "UserID").
	Project("kind", "Kind").
	Project("payload", "Payload").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "UpdatedAt", Descending: true}

func scanDraft(s repository.Scanner) (Draft, error) {
	var d Draft
	var payload []byte

	err := s.Scan(&d.ID, &d.UserID, &d.Kind, &payload, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return d, err
	}

	err = json.Unmarshal(payload, &d.Payload)
	return d, err
}
