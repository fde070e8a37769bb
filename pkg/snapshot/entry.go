package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/campusfm/projectperm/pkg/perm"
)

// Entry is one project's assignments. It is encoded as the two element
// array [projectId, assignments].
type Entry struct {
	ProjectID   string
	Assignments []perm.Assignment
}

func (e Entry) MarshalJSON() ([]byte, error) {
	assignments := e.Assignments
	if assignments == nil {
		assignments = []perm.Assignment{}
	}

	return json.Marshal([]interface{}{e.ProjectID, assignments})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}

	if len(pair) != 2 {
		return fmt.Errorf("snapshot entry: expected 2 elements, got %d", len(pair))
	}

	if err := json.Unmarshal(pair[0], &e.ProjectID); err != nil {
		return err
	}

	return json.Unmarshal(pair[1], &e.Assignments)
}
