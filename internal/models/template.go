package models

import (
	"fmt"
	"strings"
	"time"
)

// TargetSet is one planned set of a template exercise. Reps and weight are
// kept as free text, exactly as the user typed them.
type TargetSet struct {
	Reps   string `json:"reps" toml:"reps"`
	Weight string `json:"weight" toml:"weight"`
}

type Exercise struct {
	Name string      `json:"name" toml:"name"`
	Sets []TargetSet `json:"sets" toml:"set"`
}

// Template is a user-authored workout definition, immutable once saved.
type Template struct {
	ID        string     `json:"id"`
	Name      string     `json:"name" toml:"name"`
	CreatedAt time.Time  `json:"created_at"`
	Exercises []Exercise `json:"exercises" toml:"exercise"`
}

// Validate rejects a template before anything is persisted.
func (t *Template) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("template needs a name")
	}
	if len(t.Exercises) == 0 {
		return fmt.Errorf("template needs at least one exercise")
	}
	for i, ex := range t.Exercises {
		if strings.TrimSpace(ex.Name) == "" {
			return fmt.Errorf("exercise %d needs a name", i+1)
		}
	}
	return nil
}
