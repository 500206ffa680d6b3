package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Python", "SQL", "Go"}, splitSkills("Python, SQL ,Go"))
	assert.Equal(t, []string{"Python"}, splitSkills("Python"))
	assert.Nil(t, splitSkills(""))
	// Пустые элементы между запятыми отбрасываются
	assert.Equal(t, []string{"SQL"}, splitSkills(" , SQL , "))
}
