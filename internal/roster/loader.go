package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/msageha/taskscribe/internal/model"
)

// rosterFile is the on-disk shape. Both a bare list and a document with
// a top-level "members" key are accepted.
type rosterFile struct {
	Members []model.TeamMember `yaml:"members"`
}

// LoadFile reads a roster from a YAML (or JSON) file and returns a
// validated Directory.
func LoadFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}
	return Load(data)
}

// Load parses roster bytes and returns a validated Directory.
func Load(data []byte) (*Directory, error) {
	var members []model.TeamMember
	if err := yaml.Unmarshal(data, &members); err != nil {
		var rf rosterFile
		if err2 := yaml.Unmarshal(data, &rf); err2 != nil {
			return nil, fmt.Errorf("parse roster: %w", err)
		}
		members = rf.Members
	}
	return New(members)
}
