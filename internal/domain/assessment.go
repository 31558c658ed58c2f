package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssessmentType distinguishes how a posture score was produced.
type AssessmentType string

const (
	AssessmentCamera AssessmentType = "camera"
	AssessmentSelf   AssessmentType = "self-assessment"
)

func (t AssessmentType) IsValid() bool {
	return t == AssessmentCamera || t == AssessmentSelf
}

// PostureAssessment is an immutable record of a single assessment. Records
// are never mutated after insert; ordering by AssessedAt defines "latest".
type PostureAssessment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Score           int                `bson:"score" json:"score"` // 0-100
	Issues          []string           `bson:"issues,omitempty" json:"issues,omitempty"`
	Recommendations []string           `bson:"recommendations,omitempty" json:"recommendations,omitempty"`
	AssessmentType  AssessmentType     `bson:"assessmentType,omitempty" json:"assessmentType,omitempty"`
	SnapshotKey     string             `bson:"snapshotKey,omitempty" json:"-"` // S3 object key of the analyzed frame, camera mode only
	AssessedAt      time.Time          `bson:"assessedAt" json:"assessedAt"`
}
