package model

type ProjectStatus string

const (
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectArchived   ProjectStatus = "ARCHIVED"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectInProgress, ProjectCompleted, ProjectArchived:
		return true
	}
	return false
}

// Project groups owned items and wanted entries, e.g. a train
// formation. Owned by exactly one user identity; deletion is not
// exposed through the API.
type Project struct {
	UUIDBase
	UserID   string        `gorm:"type:varchar(64);not null;index" json:"userId"`
	Name     string        `gorm:"size:255;not null" json:"name"`
	Status   ProjectStatus `gorm:"type:varchar(20);not null;default:'IN_PROGRESS';index" json:"status"`
	PhotoURL *string       `gorm:"size:512" json:"photoUrl,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}
