package commands

// RebuildGraphCommand triggers a full re-assembly from the document source.
// The previous graph keeps serving until the new run finishes; a failed
// rebuild leaves it untouched.
type RebuildGraphCommand struct {
	Reason string `json:"reason,omitempty"`
}

// Validate validates the command
func (c RebuildGraphCommand) Validate() error {
	return nil
}
