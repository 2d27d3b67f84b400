package storage

import (
	"encoding/json"
	"fmt"

	"github.com/rotinasync/rotina/internal/models"
)

const defaultWaterGoalML = 3000

// RoutineStore covers the simple keyed slots: water counter, task list and
// the free-text activity/nutrition diaries. Each slot is load-everything,
// replace-everything, like the template and history stores.
type RoutineStore struct {
	kv KV
}

func NewRoutineStore(kv KV) *RoutineStore {
	return &RoutineStore{kv: kv}
}

func (rs *RoutineStore) loadInto(key string, out any) (bool, error) {
	raw, ok, err := rs.kv.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (rs *RoutineStore) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return rs.kv.Set(key, string(data))
}

func (rs *RoutineStore) Water() (models.WaterState, error) {
	state := models.WaterState{GoalML: defaultWaterGoalML}
	if _, err := rs.loadInto(KeyWater, &state); err != nil {
		return state, err
	}
	if state.GoalML <= 0 {
		state.GoalML = defaultWaterGoalML
	}
	return state, nil
}

func (rs *RoutineStore) SaveWater(state models.WaterState) error {
	return rs.save(KeyWater, state)
}

func (rs *RoutineStore) Tasks() ([]models.Task, error) {
	var tasks []models.Task
	if _, err := rs.loadInto(KeyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (rs *RoutineStore) SaveTasks(tasks []models.Task) error {
	return rs.save(KeyTasks, tasks)
}

func (rs *RoutineStore) Activity() (models.ActivityLog, error) {
	var log models.ActivityLog
	_, err := rs.loadInto(KeyActivity, &log)
	return log, err
}

func (rs *RoutineStore) SaveActivity(log models.ActivityLog) error {
	return rs.save(KeyActivity, log)
}

func (rs *RoutineStore) Nutrition() (models.NutritionLog, error) {
	var log models.NutritionLog
	_, err := rs.loadInto(KeyNutrition, &log)
	return log, err
}

func (rs *RoutineStore) SaveNutrition(log models.NutritionLog) error {
	return rs.save(KeyNutrition, log)
}
