// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/google/uuid"
)

// Brand represents a phone manufacturer in the catalog.
// Deleting a brand cascades to all phones that reference it.
type Brand struct {
	ID          uuid.UUID // The unique identifier for the brand.
	Name        string    // The brand's display name.
	Description string    // A free-text description of the brand.
	LogoURL     string    // Reference to the brand's logo image.
}
