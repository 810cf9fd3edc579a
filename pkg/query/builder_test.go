package query_test

import (
	"reflect"
	"testing"

	"github.com/billforge/billforge/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "contacts", "c").
		Project("id", "ID").
		Project("user_id", "UserID").
		Project("name", "Name").
		Project("email", "Email")
}

func TestBuilder_Build(t *testing.T) {
	userID := "alice"

	sql, args := query.NewBuilder(testProjection(), query.SortField{Field: "Name"}).
		WhereEquals("UserID", &userID).
		Build()

	want := "SELECT c.id, c.user_id, c.name, c.email FROM public.contacts c WHERE c.user_id = $1 ORDER BY c.name ASC"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != &userID {
		t.Errorf("args = %v, want [&userID]", args)
	}
}

func TestBuilder_BuildCount(t *testing.T) {
	userID := "alice"
	search := "acme"

	sql, args := query.NewBuilder(testProjection(), query.SortField{Field: "Name"}).
		WhereEquals("UserID", &userID).
		WhereSearch(&search, "Name", "Email").
		BuildCount()

	want := "SELECT COUNT(*) FROM public.contacts c WHERE c.user_id = $1 AND (c.name ILIKE $2 OR c.email ILIKE $3)"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 3 {
		t.Fatalf("len(args) = %d, want 3", len(args))
	}
	if args[1] != "%acme%" || args[2] != "%acme%" {
		t.Errorf("search args = %v, want %%acme%% twice", args[1:])
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	sql, args := query.NewBuilder(testProjection(), query.SortField{Field: "Name"}).
		BuildPage(3, 10)

	want := "SELECT c.id, c.user_id, c.name, c.email FROM public.contacts c ORDER BY c.name ASC LIMIT 10 OFFSET 20"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilder_OrderByFields(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection(), query.SortField{Field: "Name"}).
		OrderByFields([]query.SortField{
			{Field: "Email", Descending: true},
			{Field: "NotAField"},
		}).
		Build()

	want := "SELECT c.id, c.user_id, c.name, c.email FROM public.contacts c ORDER BY c.email DESC"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestBuilder_IgnoresNilConditions(t *testing.T) {
	sql, args := query.NewBuilder(testProjection(), query.SortField{Field: "Name"}).
		WhereEquals("UserID", nil).
		WhereContains("Name", nil).
		WhereSearch(nil, "Name").
		Build()

	want := "SELECT c.id, c.user_id, c.name, c.email FROM public.contacts c ORDER BY c.name ASC"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestParseSortFields(t *testing.T) {
	got := query.ParseSortFields("Name,-CreatedAt, ,")

	want := []query.SortField{
		{Field: "Name"},
		{Field: "CreatedAt", Descending: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSortFields = %v, want %v", got, want)
	}

	if got := query.ParseSortFields(""); got != nil {
		t.Errorf("ParseSortFields(\"\") = %v, want nil", got)
	}
}
