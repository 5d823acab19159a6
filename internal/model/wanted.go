package model

// Wanted is a wish-list entry against a project, convertible into an
// item. The project FK cascades: deleting a project removes its
// wanted rows.
type Wanted struct {
	UUIDBase
	ProjectID string    `gorm:"type:varchar(36);not null;index" json:"projectId"`
	Project   *Project  `gorm:"foreignKey:ProjectID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Maker     *string   `gorm:"size:100" json:"maker,omitempty"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Scale     ItemScale `gorm:"type:varchar(10);not null;default:'N'" json:"scale"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	Remarks   *string   `gorm:"type:text" json:"remarks,omitempty"`
	StoreURL  *string   `gorm:"size:512" json:"storeUrl,omitempty"`
}

func (Wanted) TableName() string {
	return "wanted"
}

// WantedWithProject is the shopping-memo view row: a wanted entry
// joined with the name of the project it belongs to.
type WantedWithProject struct {
	Wanted
	ProjectName string `json:"projectName"`
}
