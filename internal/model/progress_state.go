package model

// ProgressStateRecord 学习者进度快照的持久化行（progress.sink = mysql）
type ProgressStateRecord struct {
	BaseModel
	LearnerID string `gorm:"size:100;uniqueIndex;not null" json:"learnerId"`
	State     string `gorm:"type:longtext" json:"state"`
}

func (ProgressStateRecord) TableName() string {
	return "learner_progress_states"
}
