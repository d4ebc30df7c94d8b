package models

// Title is a team's project proposal. The period is inherited from the
// authoring team at creation time and never changes afterwards. ProposalURL
// is confidential: it is only disclosed to the owning team and to teams with
// an accepted submission targeting the owner (see TitleService).
type Title struct {
	BaseModel
	Title           string `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	ShortDesc       string `json:"short_desc" gorm:"not null;size:300" validate:"required,max=300"`
	LongDescription string `json:"long_description" gorm:"not null;type:text" validate:"required"`
	PhotoURL        string `json:"photo_url" gorm:"not null;size:500" validate:"required,url,max=500"`
	ProposalURL     string `json:"proposal_url,omitempty" gorm:"not null;size:500" validate:"required,url,max=500"`
	Period          int    `json:"period" gorm:"not null;index"`
	IsTaken         bool   `json:"is_taken" gorm:"not null;default:false"`
}

// TableName returns the table name for Title
func (Title) TableName() string {
	return "titles"
}
