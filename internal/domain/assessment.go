package domain

import "time"

// AssessmentSession and EmotionLog back the planned assessment feature.
// Their tables are created by the migrations so existing databases carry
// the schema, but no endpoint writes or reads them yet.

// AssessmentSession records one meditation or therapy sitting.
type AssessmentSession struct {
	ID          int64
	UserID      int64
	StartTime   time.Time
	EndTime     *time.Time
	Duration    int // minutes
	SessionType string
}

// EmotionLog records a single emotion reading taken during a session.
type EmotionLog struct {
	ID        int64
	UserID    int64
	Timestamp time.Time
	Emotion   string
	Intensity int // 1-10 scale
	Notes     string
}
