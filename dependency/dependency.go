// Package dependency is the third-party collaborator BaseFixture reports on.
package dependency

// Value is what Something reports.
const Value = "something"

func Something() string {
	return Value
}
