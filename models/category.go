package models

// Category forms a three-level hierarchy (level 1 -> 2 -> 3). Ownership is
// one-directional: a category knows its parent id, never its children.
// CategoryID is the stable public identifier minted at creation.
type Category struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	CategoryID string `gorm:"uniqueIndex;not null" json:"categoryId"`
	ParentID   *uint  `gorm:"index" json:"parentId,omitempty"`
	Level      int    `json:"level"`
}
