package api

import (
	"net/http"

	"github.com/billforge/billforge/internal/routes"
)

func buildRoutes(runtime *Runtime, domain *Domain) http.Handler {
	rts := routes.New(runtime.Logger)

	rts.RegisterGroup(domain.Profiles.Handler().Routes())
	rts.RegisterGroup(domain.Contacts.Handler().Routes())
	rts.RegisterGroup(domain.Drafts.Handler().Routes())
	rts.RegisterGroup(domain.SharedItems.Handler().Routes())
	rts.RegisterGroup(domain.Records.Handler().Routes())
	rts.RegisterGroup(domain.Previews.Handler(runtime.Config.Storage.MaxUploadSizeBytes()).Routes())
	rts.RegisterGroup(domain.Export.Handler().Routes())
	rts.RegisterGroup(domain.Email.Handler().Routes())

	return rts.Build()
}
