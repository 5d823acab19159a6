package model

type ItemType string

const (
	ItemTypeSet       ItemType = "SET"
	ItemTypeSingleCar ItemType = "SINGLE_CAR"
	ItemTypePart      ItemType = "PART"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeSet, ItemTypeSingleCar, ItemTypePart:
		return true
	}
	return false
}

type ItemScale string

const (
	ScaleN       ItemScale = "N"
	ScaleHO      ItemScale = "HO"
	ScalePlarail ItemScale = "PLARAIL"
	ScaleDecal   ItemScale = "DECAL"
	ScalePartN   ItemScale = "PART_N"
	ScalePartHO  ItemScale = "PART_HO"
	ScaleOther   ItemScale = "OTHER"
)

// AllScales lists every allowed scale value, in display order.
var AllScales = []ItemScale{
	ScaleN, ScaleHO, ScalePlarail, ScaleDecal, ScalePartN, ScalePartHO, ScaleOther,
}

func (s ItemScale) Valid() bool {
	switch s {
	case ScaleN, ScaleHO, ScalePlarail, ScaleDecal, ScalePartN, ScalePartHO, ScaleOther:
		return true
	}
	return false
}

var scaleLabels = map[ItemScale]string{
	ScaleN:       "N gauge",
	ScaleHO:      "HO gauge",
	ScalePlarail: "Plarail",
	ScaleDecal:   "Decals/Stickers",
	ScalePartN:   "N parts",
	ScalePartHO:  "HO parts",
	ScaleOther:   "Other",
}

func (s ItemScale) Label() string {
	if l, ok := scaleLabels[s]; ok {
		return l
	}
	return string(s)
}

// Item is an owned good recorded against a project. The project FK is
// RESTRICT on delete: a project with items cannot be deleted out from
// under them.
type Item struct {
	UUIDBase
	ProjectID string    `gorm:"type:varchar(36);not null;index" json:"projectId"`
	Project   *Project  `gorm:"foreignKey:ProjectID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Type      ItemType  `gorm:"type:varchar(20);not null" json:"type"`
	Scale     ItemScale `gorm:"type:varchar(10);not null;default:'N'" json:"scale"`
	Maker     *string   `gorm:"size:100" json:"maker,omitempty"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	Price     *string   `gorm:"size:100" json:"price,omitempty"`
	Remarks   *string   `gorm:"type:text" json:"remarks,omitempty"`
	PhotoURL  *string   `gorm:"size:512" json:"photoUrl,omitempty"`
}

func (Item) TableName() string {
	return "items"
}

// ItemWithProject is the item detail view row, joined with the name
// of the project it belongs to.
type ItemWithProject struct {
	Item
	ProjectName string `json:"projectName"`
}
