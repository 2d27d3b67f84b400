package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateValidate(t *testing.T) {
	valid := Template{
		Name: "Peito",
		Exercises: []Exercise{
			{Name: "Supino", Sets: []TargetSet{{Reps: "10", Weight: "50"}}},
		},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name     string
		template Template
	}{
		{"blank name", Template{Name: "  ", Exercises: valid.Exercises}},
		{"no exercises", Template{Name: "Peito"}},
		{"blank exercise name", Template{
			Name:      "Peito",
			Exercises: []Exercise{{Name: "Supino"}, {Name: " "}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.template.Validate())
		})
	}
}
