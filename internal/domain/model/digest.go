package model

// DigestItem pairs a selected question with its generated hint block.
type DigestItem struct {
	Question Question
	Hint     string
}

// Email is a transport-agnostic message for downstream mailers.
type Email struct {
	Subject string
	HTML    string
}
