// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is one entry in the read-only exercise catalog. Plans and
// sessions reference these by id and snapshot only the name.
type Exercise struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Category          string             `bson:"category" json:"category"` // e.g. "chest", "legs", "cardio"
	MuscleGroups      []string           `bson:"muscleGroups" json:"muscleGroups"`
	Equipment         string             `bson:"equipment" json:"equipment"` // e.g. "bodyweight", "barbell"
	Difficulty        string             `bson:"difficulty" json:"difficulty"`
	Instructions      []string           `bson:"instructions" json:"instructions"`
	Tips              []string           `bson:"tips,omitempty" json:"tips,omitempty"`
	Cautions          []string           `bson:"cautions,omitempty" json:"cautions,omitempty"`
	Variations        []string           `bson:"variations,omitempty" json:"variations,omitempty"`
	EstimatedDuration int                `bson:"estimatedDuration" json:"estimatedDuration"` // seconds per set
	CaloriesPerMinute int                `bson:"caloriesPerMinute" json:"caloriesPerMinute"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
