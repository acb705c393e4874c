package profile

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_AddExperience_NewestFirst(t *testing.T) {
	p := &Profile{UserID: uuid.New()}

	p.AddExperience(Experience{ID: uuid.New(), Title: "Dev", From: time.Now().AddDate(-3, 0, 0)})
	p.AddExperience(Experience{ID: uuid.New(), Title: "Lead", From: time.Now().AddDate(-1, 0, 0)})

	require.Len(t, p.Experience, 2)
	assert.Equal(t, "Lead", p.Experience[0].Title)
	assert.Equal(t, "Dev", p.Experience[1].Title)
}

func TestProfile_RemoveExperience(t *testing.T) {
	p := &Profile{UserID: uuid.New()}
	dev := Experience{ID: uuid.New(), Title: "Dev"}
	lead := Experience{ID: uuid.New(), Title: "Lead"}
	p.AddExperience(dev)
	p.AddExperience(lead)

	require.NoError(t, p.RemoveExperience(lead.ID))
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Dev", p.Experience[0].Title)

	err := p.RemoveExperience(lead.ID)
	assert.ErrorIs(t, err, ErrExperienceNotFound)
}

func TestProfile_AddEducation_NewestFirst(t *testing.T) {
	p := &Profile{UserID: uuid.New()}

	p.AddEducation(Education{ID: uuid.New(), School: "State U"})
	p.AddEducation(Education{ID: uuid.New(), School: "Bootcamp"})

	require.Len(t, p.Education, 2)
	assert.Equal(t, "Bootcamp", p.Education[0].School)
	assert.Equal(t, "State U", p.Education[1].School)
}

func TestProfile_RemoveEducation(t *testing.T) {
	p := &Profile{UserID: uuid.New()}
	edu := Education{ID: uuid.New(), School: "State U"}
	p.AddEducation(edu)

	err := p.RemoveEducation(uuid.New())
	assert.ErrorIs(t, err, ErrEducationNotFound)
	assert.Len(t, p.Education, 1)

	require.NoError(t, p.RemoveEducation(edu.ID))
	assert.Empty(t, p.Education)
}
