package conversation

import "context"

// Repository defines the contract for conversation script storage
type Repository interface {
	// ByScenario retrieves the scripts of a scenario
	ByScenario(ctx context.Context, scenario Scenario) ([]*Script, error)

	// Scenarios returns the scenarios that have at least one script
	Scenarios(ctx context.Context) ([]Scenario, error)
}
