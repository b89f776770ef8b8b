package entity

import "strings"

// Participant is one entry of the rotation queue. SlackUserID is the
// platform mention token and may be empty when the queue line carries only
// a display name.
type Participant struct {
	SlackUserID string
	DisplayName string
}

// ParseParticipant parses the one-line text form of a participant:
// "U123ABC, Jane Doe" or just "Jane Doe". The line is split on the first
// comma; both halves are trimmed. A line without a comma (or with nothing
// before it) is a name-only participant.
func ParseParticipant(line string) Participant {
	line = strings.TrimSpace(line)

	if id, name, found := strings.Cut(line, ","); found {
		id = strings.TrimSpace(id)
		name = strings.TrimSpace(name)
		if id != "" {
			return Participant{SlackUserID: id, DisplayName: name}
		}
		return Participant{DisplayName: name}
	}

	return Participant{DisplayName: line}
}

// HasIdentity reports whether the participant carries a Slack user ID.
func (p Participant) HasIdentity() bool {
	return p.SlackUserID != ""
}

// String returns the one-line text form persisted in the queue and current
// artifacts. Queue membership comparisons use this form.
func (p Participant) String() string {
	if p.SlackUserID != "" {
		return p.SlackUserID + ", " + p.DisplayName
	}
	return p.DisplayName
}

// Mention returns the Slack-rendered address for the participant: a
// platform mention when the user ID is known, the plain display name
// otherwise.
func (p Participant) Mention() string {
	if p.SlackUserID != "" {
		return "<@" + p.SlackUserID + ">"
	}
	return p.DisplayName
}

// IsZero reports whether the participant has neither an ID nor a name.
func (p Participant) IsZero() bool {
	return p.SlackUserID == "" && p.DisplayName == ""
}
