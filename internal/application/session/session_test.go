package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
)

func TestSetAndCurrent(t *testing.T) {
	s := NewState()
	assert.Nil(t, s.Current())

	ana := &entity.User{ID: "user-1", Name: "Ana"}
	s.Set(ana)
	require.NotNil(t, s.Current())
	assert.Equal(t, "user-1", s.Current().ID)

	s.Clear()
	assert.Nil(t, s.Current())
}

func TestOnChangeReceivesOldAndNew(t *testing.T) {
	s := NewState()

	type change struct{ oldID, newID string }
	var changes []change
	s.OnChange(func(old, new *entity.User) {
		c := change{}
		if old != nil {
			c.oldID = old.ID
		}
		if new != nil {
			c.newID = new.ID
		}
		changes = append(changes, c)
	})

	s.Set(&entity.User{ID: "user-1"})
	s.Set(&entity.User{ID: "user-2"})
	s.Clear()

	require.Len(t, changes, 3)
	assert.Equal(t, change{"", "user-1"}, changes[0])
	assert.Equal(t, change{"user-1", "user-2"}, changes[1])
	assert.Equal(t, change{"user-2", ""}, changes[2])
}
