package contact

import "time"

type Message struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Company     string    `bson:"company,omitempty" json:"company,omitempty"`
	ProjectType string    `bson:"project_type,omitempty" json:"projectType,omitempty"`
	Message     string    `bson:"message" json:"message"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// CreateRequest carries structural limits only; the field rules shown to
// users are applied by the contactform package.
type CreateRequest struct {
	Name        string `json:"name" validate:"max=120"`
	Email       string `json:"email" validate:"max=254"`
	Company     string `json:"company" validate:"max=160"`
	ProjectType string `json:"projectType" validate:"omitempty,projecttype"`
	Message     string `json:"message" validate:"max=5000"`
}
