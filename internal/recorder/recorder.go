package recorder

// RunRecord captures one completed analysis run.
type RunRecord struct {
	Correlation       float64
	OverallConfidence float64
	HealthOverall     float64
	HealthGrade       string
	InsightCount      int
	SuggestionCount   int
	ForecastCount     int
	Forced            bool
}

// DeliveryRecord captures one insight handed to the notification channel.
type DeliveryRecord struct {
	InsightType string
	CategoryID  string
	Priority    string
	Confidence  float64
	Delivered   bool // false when the channel rejected it
}

// Recorder persists analysis history for later inspection.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	RecordDelivery(rec *DeliveryRecord) error
	Close() error
}
