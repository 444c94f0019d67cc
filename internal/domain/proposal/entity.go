package proposal

import "time"

// Proposal is a commercial proposal request. One per email address.
type Proposal struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"nome" gorm:"column:nome;type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_propostas_email"`
	Phone     string    `json:"telefone" gorm:"column:telefone;type:varchar(50);not null"`
	Company   string    `json:"empresa" gorm:"column:empresa;type:varchar(255);not null;default:''"`
	Message   string    `json:"mensagem" gorm:"column:mensagem;type:text;not null;default:''"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Proposal) TableName() string {
	return "propostas"
}
