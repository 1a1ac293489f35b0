package common

import "strings"

// CommentStatus is the lifecycle state of a mirrored comment.
type CommentStatus string

const (
	CommentStatusOpen    CommentStatus = "OPEN"
	CommentStatusReplied CommentStatus = "REPLIED"
	// reserved for moderation, nothing moves a comment here yet
	CommentStatusHidden CommentStatus = "HIDDEN"
)

func (s CommentStatus) String() string {
	return string(s)
}

func (s CommentStatus) IsValid() bool {
	switch s {
	case CommentStatusOpen, CommentStatusReplied, CommentStatusHidden:
		return true
	}
	return false
}

// ParseCommentStatus accepts any casing ("open", "Replied"). Empty input means no filter.
func ParseCommentStatus(raw string) (CommentStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	status := CommentStatus(strings.ToUpper(raw))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
