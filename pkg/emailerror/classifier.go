package emailerror

import (
	"strings"
)

// Kind buckets a mailbox protocol failure for retry policy purposes.
type Kind string

const (
	// KindAuth covers rejected credentials on SMTP, IMAP or OAuth.
	// Never retried; the sender gets quarantined instead.
	KindAuth Kind = "auth"
	// KindTransient covers everything else: timeouts, connection
	// resets, greylisting, provider hiccups. The queue redelivers.
	KindTransient Kind = "transient"
)

// authPatterns are matched case-insensitively against the raw error
// string. 535/534 are the SMTP auth-rejected reply codes.
var authPatterns = []string{
	"auth",
	"authentication",
	"invalid credentials",
	"login failed",
	"535",
	"534",
}

// Classifier classifies mail protocol errors
type Classifier struct{}

// NewClassifier creates a new error classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify analyzes an error and returns its retry bucket
func (c *Classifier) Classify(err error) Kind {
	if err == nil {
		return KindTransient
	}
	if containsAny(err.Error(), authPatterns) {
		return KindAuth
	}
	return KindTransient
}

// IsAuthFailure reports whether the error indicates rejected credentials
func (c *Classifier) IsAuthFailure(err error) bool {
	return err != nil && c.Classify(err) == KindAuth
}

// containsAny checks if the error string contains any of the patterns (case-insensitive)
func containsAny(errStr string, patterns []string) bool {
	errLower := strings.ToLower(errStr)
	for _, pattern := range patterns {
		if strings.Contains(errLower, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}
