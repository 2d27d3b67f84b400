package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rotinasync/rotina/internal/models"
)

// ParseTemplateFromTOML reads a workout template definition file:
//
//	name = "Peito"
//
//	[[exercise]]
//	name = "Supino"
//
//	[[exercise.set]]
//	reps = "10"
//	weight = "50"
func ParseTemplateFromTOML(path string) (*models.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var template models.Template
	if err := toml.Unmarshal(data, &template); err != nil {
		return nil, err
	}

	return &template, nil
}

// ParseExerciseFlag parses the compact flag form "Supino:10@50,8@55" into an
// exercise with its target sets. Reps and weight stay free text.
func ParseExerciseFlag(spec string) (models.Exercise, error) {
	name, setsPart, ok := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" || strings.TrimSpace(setsPart) == "" {
		return models.Exercise{}, fmt.Errorf("invalid exercise %q, expected \"Name:reps@weight,...\"", spec)
	}

	var sets []models.TargetSet
	for _, part := range strings.Split(setsPart, ",") {
		reps, weight, ok := strings.Cut(strings.TrimSpace(part), "@")
		if !ok || strings.TrimSpace(reps) == "" {
			return models.Exercise{}, fmt.Errorf("invalid set %q in exercise %q, expected \"reps@weight\"", part, name)
		}
		sets = append(sets, models.TargetSet{
			Reps:   strings.TrimSpace(reps),
			Weight: strings.TrimSpace(weight),
		})
	}

	return models.Exercise{Name: name, Sets: sets}, nil
}
