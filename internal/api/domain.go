package api

import (
	"github.com/billforge/billforge/internal/contacts"
	"github.com/billforge/billforge/internal/drafts"
	"github.com/billforge/billforge/internal/email"
	"github.com/billforge/billforge/internal/export"
	"github.com/billforge/billforge/internal/previews"
	"github.com/billforge/billforge/internal/profiles"
	"github.com/billforge/billforge/internal/records"
	"github.com/billforge/billforge/internal/shareditems"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Profiles    profiles.System
	Contacts    contacts.System
	Drafts      drafts.System
	SharedItems shareditems.System
	Records     records.System
	Previews    previews.System
	Export      export.System
	Email       email.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	profilesSys := profiles.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	contactsSys := contacts.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Config.Pagination,
	)

	draftsSys := drafts.New(
		runtime.Database.Connection(),
		runtime.Config.Autosave.WindowDuration(),
		runtime.Logger,
	)

	sharedItemsSys := shareditems.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	recordsSys := records.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Config.Pagination,
	)

	previewsSys := previews.New(
		runtime.Storage,
		runtime.Logger,
	)

	exportSys := export.New(
		&runtime.Config.Export,
		previewsSys,
		runtime.Storage,
		nil,
		runtime.Logger,
	)

	emailSys := email.New(
		&runtime.Config.Email,
		exportSys,
		profilesSys,
		runtime.Logger,
	)

	return &Domain{
		Profiles:    profilesSys,
		Contacts:    contactsSys,
		Drafts:      draftsSys,
		SharedItems: sharedItemsSys,
		Records:     recordsSys,
		Previews:    previewsSys,
		Export:      exportSys,
		Email:       emailSys,
	}
}

// Start registers lifecycle hooks for systems that hold buffered state.
func (d *Domain) Start(runtime *Runtime) error {
	return d.Drafts.Start(runtime.Lifecycle)
}
