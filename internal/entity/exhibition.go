package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExhibitionStatus string

const (
	ExhibitionDraft    ExhibitionStatus = "draft"
	ExhibitionUpcoming ExhibitionStatus = "upcoming"
	ExhibitionActive   ExhibitionStatus = "active"
	ExhibitionEnded    ExhibitionStatus = "ended"
)

// PublicExhibitionStatuses are the only statuses visible without ownership.
var PublicExhibitionStatuses = []ExhibitionStatus{ExhibitionActive, ExhibitionUpcoming}

func (s ExhibitionStatus) IsPublic() bool {
	return s == ExhibitionActive || s == ExhibitionUpcoming
}

type Exhibition struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	CreatorID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"creatorId"`
	Creator       *User            `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"creator,omitempty"`
	Title         string           `gorm:"size:100;not null" json:"title"`
	Description   string           `gorm:"type:text;not null" json:"description"`
	Category      string           `gorm:"size:50;not null;index" json:"category"`
	Status        ExhibitionStatus `gorm:"size:20;not null;default:draft;index" json:"status"`
	CoverImageURL *string          `gorm:"type:text" json:"coverImageUrl"`
	StartDate     time.Time        `gorm:"not null" json:"startDate"`
	EndDate       time.Time        `gorm:"not null" json:"endDate"`
	Views         int64            `gorm:"not null;default:0" json:"views"`
	Likes         int64            `gorm:"not null;default:0" json:"likes"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (e *Exhibition) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID, err = uuid.NewV7()
	}
	return
}

type ParticipationStatus string

const (
	ParticipationPending  ParticipationStatus = "pending"
	ParticipationApproved ParticipationStatus = "approved"
	ParticipationRejected ParticipationStatus = "rejected"
)

type ExhibitionParticipation struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_participation_user_exhibition,priority:1" json:"userId"`
	ExhibitionID uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_participation_user_exhibition,priority:2;index" json:"exhibitionId"`
	Exhibition   *Exhibition         `gorm:"constraint:OnDelete:CASCADE" json:"exhibition,omitempty"`
	Status       ParticipationStatus `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt    time.Time           `gorm:"autoCreateTime" json:"createdAt"`
}

func (p *ExhibitionParticipation) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID, err = uuid.NewV7()
	}
	return
}
