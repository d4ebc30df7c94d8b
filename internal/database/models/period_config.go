package models

// PeriodConfig is the singleton row holding the global current period
// counter. ConfigID is always 1; the unique index keeps concurrent
// first-access upserts from creating a second row.
type PeriodConfig struct {
	BaseModel
	ConfigID      int `json:"config_id" gorm:"uniqueIndex:idx_period_config_singleton;not null"`
	CurrentPeriod int `json:"current_period" gorm:"not null;default:0"`
}

// TableName returns the table name for PeriodConfig
func (PeriodConfig) TableName() string {
	return "period_config"
}
