package model

type FAQItem struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Question string `gorm:"not null" json:"question"`
	Answer   string `gorm:"type:text" json:"answer"`
}

func (FAQItem) TableName() string {
	return "faqs"
}
