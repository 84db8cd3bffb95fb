package audit

// QueryData is one audited exchange: who asked what, on which endpoint.
type QueryData struct {
	ID        string `json:"id"`
	Query     string `json:"query"`
	User      string `json:"user"`
	Path      string `json:"path"`
	Timestamp int64  `json:"timestamp"`
}

type Audit interface {
	Write(q *QueryData) error
}
