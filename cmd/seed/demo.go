package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// DemoSeeder populates a demo workspace: a business profile, a few
// contacts, and a shared item library for the demo user.
type DemoSeeder struct {
	userID string
}

func init() {
	registerSeeder(&DemoSeeder{userID: "demo-user"})
}

func (s *DemoSeeder) Name() string {
	return "demo"
}

func (s *DemoSeeder) Description() string {
	return "Seeds a demo workspace with a profile, contacts, and shared items"
}

func (s *DemoSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	if err := s.seedProfile(ctx, tx); err != nil {
		return err
	}
	if err := s.seedContacts(ctx, tx); err != nil {
		return err
	}
	return s.seedSharedItems(ctx, tx)
}

func (s *DemoSeeder) seedProfile(ctx context.Context, tx *sql.Tx) error {
	q := `
		INSERT INTO profiles (
			user_id, business_name, business_email, business_phone,
			business_address, default_currency, default_notes, default_terms
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO NOTHING`

	_, err := tx.ExecContext(ctx, q,
		s.userID,
		"Acme Consulting LLC",
		"billing@acme.example",
		"+1 555 0100",
		"100 Main St, Springfield",
		"USD",
		"Thank you for your business.",
		"Payment due within 30 days.",
	)
	if err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	return nil
}

func (s *DemoSeeder) seedContacts(ctx context.Context, tx *sql.Tx) error {
	contacts := []struct {
		name, email, phone, address string
	}{
		{"Globex Corporation", "ap@globex.example", "+1 555 0199", "1 Industry Way, Cypress Creek"},
		{"Initech", "accounts@initech.example", "+1 555 0142", "4120 Freidrich Ln, Austin"},
		{"Hooli", "billing@hooli.example", "+1 555 0177", "1401 N Shoreline Blvd, Palo Alto"},
	}

	q := `
		INSERT INTO contacts (user_id, name, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)`

	for _, c := range contacts {
		if _, err := tx.ExecContext(ctx, q, s.userID, c.name, c.email, c.phone, c.address); err != nil {
			return fmt.Errorf("seed contact %s: %w", c.name, err)
		}
	}
	return nil
}

func (s *DemoSeeder) seedSharedItems(ctx context.Context, tx *sql.Tx) error {
	items := []map[string]any{
		{
			"description": "Consulting (hourly)",
			"quantity":    "1",
			"unit_price":  "150",
			"tax_rate":    "0",
			"discount":    "0",
		},
		{
			"description": "Project setup fee",
			"quantity":    "1",
			"unit_price":  "500",
			"tax_rate":    "0",
			"discount":    "0",
		},
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal shared items: %w", err)
	}

	q := `
		INSERT INTO shared_items (user_id, items)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET items = $2, updated_at = NOW()`

	if _, err := tx.ExecContext(ctx, q, s.userID, data); err != nil {
		return fmt.Errorf("seed shared items: %w", err)
	}
	return nil
}
