package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

const (
	ChangeTypeCreated = "created"
	ChangeTypeUpdated = "updated"
	ChangeTypeDeleted = "deleted"
)

// ChangelogEntry is an append-only record of a version lifecycle event.
// Entries are never mutated; they are removed only when their game is
// deleted. For updated entries ChangedFields matches the key sets of both
// OldValues and NewValues.
type ChangelogEntry struct {
	ID uint `gorm:"primaryKey" json:"-"`

	GameID      string `gorm:"size:64;not null;index;index:idx_changelog_scope" json:"game_id"`
	GameVersion string `gorm:"size:64;not null;index:idx_changelog_scope" json:"game_version"`
	ChangeType  string `gorm:"size:16;not null" json:"change_type"`

	// ChangedFields stores a JSON array of field names (updates only).
	ChangedFields datatypes.JSON    `gorm:"type:json" json:"changed_fields,omitempty"`
	OldValues     datatypes.JSONMap `gorm:"type:json" json:"old_values,omitempty"`
	NewValues     datatypes.JSONMap `gorm:"type:json" json:"new_values,omitempty"`

	ChangedBy         string    `gorm:"size:64;not null;default:system" json:"changed_by"`
	ChangedAt         time.Time `gorm:"not null;index;index:idx_changelog_scope,sort:desc" json:"changed_at"`
	ChangeDescription string    `gorm:"size:512" json:"change_description,omitempty"`
}

func (ChangelogEntry) TableName() string { return "version_changelogs" }

func (c *ChangelogEntry) GetChangedFields() []string {
	var arr []string
	if len(c.ChangedFields) == 0 {
		return arr
	}
	_ = json.Unmarshal(c.ChangedFields, &arr)
	return arr
}

func (c *ChangelogEntry) SetChangedFields(fields []string) {
	b, _ := json.Marshal(fields)
	c.ChangedFields = b
}
