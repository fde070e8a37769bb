package seed

import "fmt"

// Policy decides when the demo assignments are written at startup.
type Policy string

const (
	// PolicyAlways re-applies the demo assignments on every start, overwriting
	// any edits made to the same project and staff pairs.
	PolicyAlways    Policy = "always"
	PolicyWhenEmpty Policy = "when-empty"
	PolicyNever     Policy = "never"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyAlways, PolicyWhenEmpty, PolicyNever:
		return p, nil
	case "":
		return PolicyAlways, nil
	default:
		return "", fmt.Errorf("unknown seed policy %q", s)
	}
}
