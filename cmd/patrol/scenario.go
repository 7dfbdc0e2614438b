package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the declarative input for one patrol run. Ticks are consumed in
// order and every tick is delivered to all agents in the same step.
type Scenario struct {
	Name           string   `yaml:"name"`
	Waypoints      int      `yaml:"waypoints"`
	LookTicks      int      `yaml:"lookTicks"`
	AlarmThreshold int      `yaml:"alarmThreshold"`
	Ticks          []string `yaml:"ticks"`
}

// LoadScenario reads a scenario YAML file. Missing tuning fields fall back to
// the defaults of DefaultScenario.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	sc := Scenario{
		Waypoints:      defaultWaypoints,
		LookTicks:      defaultLookTicks,
		AlarmThreshold: defaultAlarmThreshold,
	}
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if sc.Name == "" {
		sc.Name = "patrol"
	}
	if sc.Waypoints <= 0 {
		return nil, fmt.Errorf("scenario %q: waypoints must be positive", sc.Name)
	}
	if sc.LookTicks <= 0 {
		return nil, fmt.Errorf("scenario %q: lookTicks must be positive", sc.Name)
	}
	if sc.AlarmThreshold <= 0 {
		return nil, fmt.Errorf("scenario %q: alarmThreshold must be positive", sc.Name)
	}
	if len(sc.Ticks) == 0 {
		return nil, fmt.Errorf("scenario %q has no ticks", sc.Name)
	}
	return &sc, nil
}

const (
	defaultWaypoints      = 4
	defaultLookTicks      = 2
	defaultAlarmThreshold = 3
)

// DefaultScenario is the built-in demo run used when no file is given. A
// noise interrupts the rounds, a second noise during the sweep stacks a
// deeper search, and the third noise trips the alarm.
func DefaultScenario() *Scenario {
	return &Scenario{
		Name:           "night-watch",
		Waypoints:      defaultWaypoints,
		LookTicks:      defaultLookTicks,
		AlarmThreshold: defaultAlarmThreshold,
		Ticks: []string{
			"move", "move",
			"noise", "look", "noise", "look", "look", "look", "look",
			"move", "noise", "look", "look",
			"move", "move",
		},
	}
}
