package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputValidate(t *testing.T) {
	due := time.Date(2026, time.March, 5, 14, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		input     Input
		wantErr   string
		wantTitle string
	}{
		{
			name:      "valid basic input",
			input:     Input{Title: "Buy groceries"},
			wantTitle: "Buy groceries",
		},
		{
			name:      "title and description are trimmed",
			input:     Input{Title: "  Write report  ", Description: "  Q4 numbers  "},
			wantTitle: "Write report",
		},
		{
			name:    "empty title rejected",
			input:   Input{Title: ""},
			wantErr: "title",
		},
		{
			name:    "whitespace-only title rejected",
			input:   Input{Title: "   \t "},
			wantErr: "title",
		},
		{
			name:      "due date passes through",
			input:     Input{Title: "Submit proposal", DueDate: &due},
			wantTitle: "Submit proposal",
		},
		{
			name:    "unknown status rejected",
			input:   Input{Title: "Task", Status: Status("archived")},
			wantErr: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantErr, verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, tt.input.Title)
		})
	}
}

func TestInputValidate_DefaultsStatus(t *testing.T) {
	in := Input{Title: "Task"}
	require.NoError(t, in.Validate())
	assert.Equal(t, StatusPending, in.Status)
}

func TestChangesValidate(t *testing.T) {
	t.Run("blank title rejected", func(t *testing.T) {
		title := "  "
		ch := Changes{Title: &title}
		err := ch.Validate()
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "title", verr.Field)
	})

	t.Run("title trimmed", func(t *testing.T) {
		title := "  New title "
		ch := Changes{Title: &title}
		require.NoError(t, ch.Validate())
		assert.Equal(t, "New title", *ch.Title)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		bad := Status("later")
		ch := Changes{Status: &bad}
		require.Error(t, ch.Validate())
	})

	t.Run("empty change set is valid", func(t *testing.T) {
		ch := Changes{}
		require.NoError(t, ch.Validate())
		assert.True(t, ch.Empty())
	})
}

func TestStatusToggle(t *testing.T) {
	assert.Equal(t, StatusCompleted, StatusPending.Toggle())
	assert.Equal(t, StatusPending, StatusCompleted.Toggle())
}
