package lead

import "time"

// ResourceGuideNR1 identifies the downloadable asset offered by the form.
const ResourceGuideNR1 = "Guia NR-1"

// Lead is a person who asked for a downloadable resource in exchange for
// contact details. Rows are only ever inserted.
type Lead struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"nome" gorm:"column:nome;type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"column:email;type:varchar(255);not null;index"`
	Company   string    `json:"empresa" gorm:"column:empresa;type:varchar(255);not null;default:''"`
	Resource  string    `json:"recurso" gorm:"column:recurso;type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Lead) TableName() string {
	return "leads"
}
