package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Label palette offered by the board UI. Other tags are accepted as-is.
const (
	LabelBug     = "bug"
	LabelFeature = "feature"
	LabelDesign  = "design"
	LabelUrgent  = "urgent"
)

var KnownLabels = []string{LabelBug, LabelFeature, LabelDesign, LabelUrgent}

type Card struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ListID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	DueDate     *time.Time
	Labels      pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Position    int            `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Comments []Comment `gorm:"foreignKey:CardID"`
}

// NormalizeLabels lower-cases and trims tags, dropping blanks and duplicates
// while keeping the order of first appearance.
func NormalizeLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		l = strings.ToLower(strings.TrimSpace(l))
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
