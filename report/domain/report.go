package domain

// InstanceRecord is one compute instance observed at fetch time. Records are
// ephemeral; they are recomputed on every fetch and never persisted.
type InstanceRecord struct {
	ID    string
	Type  string
	State string
}

// Attachment is a named binary blob uploaded alongside a report.
type Attachment struct {
	Name  string
	Bytes []byte
}

// Field is one label/value pair displayed by notification-style reports.
// A slice keeps the rendering order stable.
type Field struct {
	Label string
	Value string
}

// Report is the rendering output: constructed once by a renderer, consumed
// exactly once by the publisher.
type Report struct {
	Title       string
	Body        string
	Attachments []Attachment
	Fields      []Field
}
