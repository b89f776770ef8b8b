package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseParticipant(t *testing.T) {
	tests := []struct {
		name            string
		line            string
		wantSlackUserID string
		wantDisplayName string
	}{
		{
			name:            "Should parse identity and name",
			line:            "U1, Kai",
			wantSlackUserID: "U1",
			wantDisplayName: "Kai",
		},
		{
			name:            "Should parse a name-only line",
			line:            "Irshad",
			wantDisplayName: "Irshad",
		},
		{
			name:            "Should trim surrounding whitespace",
			line:            "  U123ABC ,  Jane Doe  ",
			wantSlackUserID: "U123ABC",
			wantDisplayName: "Jane Doe",
		},
		{
			name:            "Should split on the first comma only",
			line:            "U1, Doe, Jane",
			wantSlackUserID: "U1",
			wantDisplayName: "Doe, Jane",
		},
		{
			name:            "Should treat an empty identity as name-only",
			line:            ", Kai",
			wantDisplayName: "Kai",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseParticipant(tt.line)

			assert.Equal(t, tt.wantSlackUserID, got.SlackUserID)
			assert.Equal(t, tt.wantDisplayName, got.DisplayName)
		})
	}
}

func Test_Participant_RoundTrip(t *testing.T) {
	lines := []string{
		"U1, Kai",
		"Irshad",
		"  U2 ,  Minh ",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			parsed := ParseParticipant(line)
			reparsed := ParseParticipant(parsed.String())

			assert.Equal(t, parsed, reparsed)
		})
	}
}

func Test_Participant_Mention(t *testing.T) {
	assert.Equal(t, "<@U1>", ParseParticipant("U1, Kai").Mention())
	assert.Equal(t, "Irshad", ParseParticipant("Irshad").Mention())
}

func Test_Participant_HasIdentity(t *testing.T) {
	assert.True(t, ParseParticipant("U1, Kai").HasIdentity())
	assert.False(t, ParseParticipant("Irshad").HasIdentity())
}

func Test_Participant_IsZero(t *testing.T) {
	assert.True(t, Participant{}.IsZero())
	assert.False(t, ParseParticipant("Irshad").IsZero())
}
